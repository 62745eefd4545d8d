// Package gifencoder provides an animated GIF encoder built on image/gif.
package gifencoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"

	"golang.org/x/image/draw"

	"github.com/user/img2gif/pkg/ports"
)

var (
	// ErrNotStarted is returned when frames are added before Begin.
	ErrNotStarted = errors.New("gifencoder: Begin has not been called")
	// ErrNoFrames is returned by End when no frame was encoded.
	ErrNoFrames = errors.New("gifencoder: no frames to encode")
	// ErrUnknownPalette is returned by Begin for an unrecognized palette name.
	ErrUnknownPalette = errors.New("gifencoder: unknown palette")
)

// maxColors is the size limit of a GIF colour table.
const maxColors = 256

// Encoder implements ports.AnimationEncoder for animated GIF.
// Frames are quantized as they arrive and the file is assembled in memory
// by End.
type Encoder struct {
	anim   *gif.GIF
	drawer draw.Drawer

	// fixed is nil in adaptive mode. fixedRoom is fixed with one entry
	// freed for the transparent index when it was full.
	fixed     color.Palette
	fixedRoom color.Palette
}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Palette returns the fixed palette registered under name, or nil for the
// adaptive mode. An empty name selects adaptive.
func Palette(name string) (color.Palette, error) {
	switch name {
	case ports.PaletteAdaptive, "":
		return nil, nil
	case ports.PalettePlan9:
		return palette.Plan9, nil
	case ports.PaletteWebSafe:
		return palette.WebSafe, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
}

// DelayCentiseconds converts a frame duration in milliseconds to the GIF
// delay unit. GIF stores hundredths of a second; the value is truncated and
// never drops to zero, which many viewers treat as "as fast as possible".
func DelayCentiseconds(ms int) int {
	cs := ms / 10
	if cs < 1 {
		cs = 1
	}
	return cs
}

// FrameDelayMs returns the delay stored for a requested duration.
func (e *Encoder) FrameDelayMs(delayMs int) int {
	return DelayCentiseconds(delayMs) * 10
}

// Begin starts a new animation with the given logical screen size.
func (e *Encoder) Begin(width, height int, opts ports.EncoderOptions) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gifencoder: invalid canvas %dx%d", width, height)
	}
	p, err := Palette(opts.Palette)
	if err != nil {
		return err
	}

	e.fixed = p
	e.fixedRoom = nil
	if p != nil {
		e.fixedRoom = makeRoom(p)
	}
	e.drawer = draw.Src
	if opts.Dither {
		e.drawer = draw.FloydSteinberg
	}

	e.anim = &gif.GIF{
		LoopCount: opts.LoopCount,
		Config: image.Config{
			Width:  width,
			Height: height,
		},
	}
	// A fixed palette becomes the global colour table. Adaptive frames
	// each carry a local table.
	if p != nil {
		e.anim.Config.ColorModel = p
	}
	return nil
}

// EncodeFrame quantizes img and appends it with the given duration.
func (e *Encoder) EncodeFrame(img image.Image, delayMs int) error {
	if e.anim == nil {
		return ErrNotStarted
	}

	b := img.Bounds()
	if b.Dx() > e.anim.Config.Width || b.Dy() > e.anim.Config.Height {
		return fmt.Errorf("gifencoder: frame %dx%d exceeds canvas %dx%d",
			b.Dx(), b.Dy(), e.anim.Config.Width, e.anim.Config.Height)
	}

	e.anim.Image = append(e.anim.Image, e.quantize(img))
	e.anim.Delay = append(e.anim.Delay, DelayCentiseconds(delayMs))
	e.anim.Disposal = append(e.anim.Disposal, gif.DisposalBackground)
	return nil
}

// quantize maps img onto a palette with its top-left corner at the origin.
// Pixels below the alpha threshold become the transparent index, which is
// appended as the last palette entry.
func (e *Encoder) quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	mask := transparencyMask(img)

	var p color.Palette
	switch {
	case e.fixed == nil && mask != nil:
		p = AdaptivePalette(img, maxColors-1)
	case e.fixed == nil:
		p = AdaptivePalette(img, maxColors)
	case mask != nil:
		p = e.fixedRoom
	default:
		p = e.fixed
	}

	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p)
	if len(p) == 0 {
		// Empty or fully transparent frame
		dst.Palette = color.Palette{color.Black}
	} else {
		// Dither against straight colours so alpha does not leak into
		// the error diffusion.
		src := img
		if !isOpaque(img) {
			src = opaqueCopy(img)
		}
		e.drawer.Draw(dst, dst.Rect, src, b.Min)
	}
	if mask == nil {
		return dst
	}

	dst.Palette = append(p[:len(p):len(p)], color.Transparent)
	transparent := uint8(len(dst.Palette) - 1)
	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if mask[y*b.Dx()+x] {
				row[x] = transparent
			}
		}
	}
	return dst
}

// End assembles the GIF and resets the encoder.
func (e *Encoder) End() ([]byte, error) {
	if e.anim == nil {
		return nil, ErrNotStarted
	}
	anim := e.anim
	e.anim = nil

	if len(anim.Image) == 0 {
		return nil, ErrNoFrames
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("gifencoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Encoder implements ports.AnimationEncoder
var _ ports.AnimationEncoder = (*Encoder)(nil)
