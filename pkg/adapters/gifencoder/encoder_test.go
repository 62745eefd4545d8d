package gifencoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"testing"

	"golang.org/x/image/draw"

	"github.com/user/img2gif/pkg/ports"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func defaultOptions() ports.EncoderOptions {
	return ports.EncoderOptions{LoopCount: 0, Palette: ports.PaletteAdaptive, Dither: true}
}

func TestEncoder_RoundTrip(t *testing.T) {
	enc := New()

	if err := enc.Begin(40, 30, defaultOptions()); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	colours := []color.Color{color.White, color.Black, color.RGBA{R: 255, A: 255}}
	for _, c := range colours {
		if err := enc.EncodeFrame(solid(40, 30, c), 200); err != nil {
			t.Fatalf("EncodeFrame failed: %v", err)
		}
	}
	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gif.DecodeAll failed: %v", err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 20 {
			t.Errorf("frame %d: expected delay 20cs, got %d", i, d)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("expected infinite loop (0), got %d", g.LoopCount)
	}
	if g.Config.Width != 40 || g.Config.Height != 30 {
		t.Errorf("expected 40x30 canvas, got %dx%d", g.Config.Width, g.Config.Height)
	}

	// Frame order is preserved: first frame white, second black.
	r, _, _, _ := g.Image[0].At(5, 5).RGBA()
	if r>>8 != 255 {
		t.Errorf("expected white first frame, got r=%d", r>>8)
	}
	r, _, _, _ = g.Image[1].At(5, 5).RGBA()
	if r>>8 != 0 {
		t.Errorf("expected black second frame, got r=%d", r>>8)
	}
}

func TestEncoder_SmallerFrameFitsCanvas(t *testing.T) {
	enc := New()

	if err := enc.Begin(50, 50, defaultOptions()); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := enc.EncodeFrame(solid(50, 50, color.White), 100); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	if err := enc.EncodeFrame(solid(20, 10, color.Black), 100); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gif.DecodeAll failed: %v", err)
	}
	if b := g.Image[1].Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("expected second frame 20x10, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncoder_FrameLargerThanCanvas(t *testing.T) {
	enc := New()
	enc.Begin(10, 10, defaultOptions())

	if err := enc.EncodeFrame(solid(11, 10, color.White), 100); err == nil {
		t.Error("expected error for oversized frame")
	}
}

func TestEncoder_OffsetBounds(t *testing.T) {
	enc := New()
	enc.Begin(8, 8, defaultOptions())

	src := solid(20, 20, color.White).SubImage(image.Rect(12, 12, 20, 20))
	if err := enc.EncodeFrame(src, 100); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	if _, err := enc.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
}

func TestEncoder_NotStarted(t *testing.T) {
	enc := New()

	if err := enc.EncodeFrame(solid(1, 1, color.White), 100); !errors.Is(err, ErrNotStarted) {
		t.Errorf("expected ErrNotStarted, got %v", err)
	}
	if _, err := enc.End(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("expected ErrNotStarted, got %v", err)
	}
}

func TestEncoder_NoFrames(t *testing.T) {
	enc := New()
	enc.Begin(10, 10, defaultOptions())

	if _, err := enc.End(); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestEncoder_BeginValidation(t *testing.T) {
	enc := New()

	if err := enc.Begin(0, 10, defaultOptions()); err == nil {
		t.Error("expected error for zero width")
	}
	opts := defaultOptions()
	opts.Palette = "sepia"
	if err := enc.Begin(10, 10, opts); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestEncoder_WebSafeWithoutDither(t *testing.T) {
	enc := New()
	opts := ports.EncoderOptions{Palette: ports.PaletteWebSafe, Dither: false}

	if err := enc.Begin(4, 4, opts); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	enc.EncodeFrame(solid(4, 4, color.RGBA{R: 255, G: 0, B: 0, A: 255}), 50)
	enc.EncodeFrame(solid(4, 4, color.RGBA{R: 0, G: 0, B: 255, A: 255}), 50)
	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gif.DecodeAll failed: %v", err)
	}
	r, _, b, _ := g.Image[0].At(1, 1).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("expected pure red, got r=%d b=%d", r>>8, b>>8)
	}
}

func encodeOne(t *testing.T, img image.Image, opts ports.EncoderOptions) *gif.GIF {
	t.Helper()
	b := img.Bounds()
	enc := New()
	if err := enc.Begin(b.Dx(), b.Dy(), opts); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := enc.EncodeFrame(img, 100); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gif.DecodeAll failed: %v", err)
	}
	return g
}

func TestEncoder_AdaptiveKeepsSolidColour(t *testing.T) {
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	g := encodeOne(t, solid(8, 8, want), defaultOptions())

	frame := g.Image[0]
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, gg, b, a := frame.At(x, y).RGBA()
			got := color.RGBA{R: uint8(r >> 8), G: uint8(gg >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncoder_AdaptiveReducesManyColours(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: uint8((x + y) * 4), A: 255})
		}
	}

	g := encodeOne(t, img, defaultOptions())
	if n := len(g.Image[0].Palette); n > 256 {
		t.Errorf("palette has %d entries, want at most 256", n)
	}
}

func TestEncoder_FixedPaletteOption(t *testing.T) {
	opts := ports.EncoderOptions{Palette: ports.PalettePlan9, Dither: true}
	g := encodeOne(t, solid(8, 8, color.RGBA{R: 200, G: 100, B: 50, A: 255}), opts)

	inPlan9 := make(map[color.RGBA]bool)
	for _, c := range palette.Plan9 {
		inPlan9[color.RGBAModel.Convert(c).(color.RGBA)] = true
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBAModel.Convert(g.Image[0].At(x, y)).(color.RGBA)
			if !inPlan9[c] {
				t.Fatalf("pixel (%d,%d) = %v is not a plan9 colour", x, y, c)
			}
		}
	}
}

func halfTransparent() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestEncoder_KeepsTransparency(t *testing.T) {
	palettes := []string{ports.PaletteAdaptive, ports.PalettePlan9, ports.PaletteWebSafe}

	for _, name := range palettes {
		t.Run(name, func(t *testing.T) {
			g := encodeOne(t, halfTransparent(), ports.EncoderOptions{Palette: name, Dither: true})

			frame := g.Image[0]
			if _, _, _, a := frame.At(0, 0).RGBA(); a != 0 {
				t.Errorf("transparent pixel decoded with alpha %d", a>>8)
			}
			r, gg, b, a := frame.At(3, 3).RGBA()
			if a>>8 != 255 || r>>8 < 200 || gg>>8 > 60 || b>>8 > 60 {
				t.Errorf("opaque pixel decoded as (%d,%d,%d,%d), want red", r>>8, gg>>8, b>>8, a>>8)
			}
		})
	}
}

func TestEncoder_FullyTransparentFrame(t *testing.T) {
	g := encodeOne(t, image.NewNRGBA(image.Rect(0, 0, 3, 3)), defaultOptions())

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if _, _, _, a := g.Image[0].At(x, y).RGBA(); a != 0 {
				t.Fatalf("pixel (%d,%d) has alpha %d, want 0", x, y, a>>8)
			}
		}
	}
}

func TestMedianCut_Quantize(t *testing.T) {
	var q draw.Quantizer = MedianCut{NumColors: 1}

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 100, A: 255})
	img.Set(1, 0, color.RGBA{R: 200, A: 255})

	p := q.Quantize(make(color.Palette, 0, 1), img)
	if len(p) != 1 {
		t.Fatalf("expected 1 colour, got %d", len(p))
	}
	if got := p[0].(color.RGBA); got != (color.RGBA{R: 150, A: 255}) {
		t.Errorf("expected mean colour (150,0,0), got %v", got)
	}

	p = MedianCut{NumColors: 4}.Quantize(nil, img)
	if len(p) != 2 {
		t.Errorf("expected 2 colours for a 2-colour image, got %d", len(p))
	}
}

func TestMakeRoom(t *testing.T) {
	if n := len(makeRoom(palette.Plan9)); n != 255 {
		t.Errorf("plan9 with room has %d entries, want 255", n)
	}
	if n := len(makeRoom(palette.WebSafe)); n != len(palette.WebSafe) {
		t.Errorf("websafe should keep %d entries, got %d", len(palette.WebSafe), n)
	}
	if len(palette.Plan9) != 256 {
		t.Error("makeRoom must not modify its input")
	}
}

func TestDelayCentiseconds(t *testing.T) {
	tests := []struct {
		ms   int
		want int
	}{
		{1000, 100},
		{200, 20},
		{166, 16},
		{100, 10},
		{66, 6},
		{33, 3},
		{39, 3},
		{5, 1},
		{0, 1},
	}

	for _, tt := range tests {
		if got := DelayCentiseconds(tt.ms); got != tt.want {
			t.Errorf("DelayCentiseconds(%d) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestEncoder_FrameDelayMs(t *testing.T) {
	enc := New()
	if got := enc.FrameDelayMs(166); got != 160 {
		t.Errorf("FrameDelayMs(166) = %d, want 160", got)
	}
	if got := enc.FrameDelayMs(3); got != 10 {
		t.Errorf("FrameDelayMs(3) = %d, want 10", got)
	}
}
