package gifencoder

import (
	"image"
	"image/color"
	"sort"
)

// alphaThreshold is the 16-bit alpha below which a pixel is written as
// the transparent index.
const alphaThreshold = 0x8000

// AdaptivePalette returns a palette of at most limit colours built from the
// opaque pixels of m. When m has no more distinct colours than limit the
// palette holds exactly those colours; otherwise it is reduced by median cut.
func AdaptivePalette(m image.Image, limit int) color.Palette {
	hist := histogram(m)
	if len(hist) <= limit {
		p := make(color.Palette, len(hist))
		for i, h := range hist {
			p[i] = h.rgba()
		}
		return p
	}
	return MedianCut{NumColors: limit}.reduce(hist)
}

// MedianCut is a draw.Quantizer that splits the colour space of an image
// into at most NumColors boxes and returns their weighted means.
type MedianCut struct {
	NumColors int
}

// Quantize implements draw.Quantizer.
func (q MedianCut) Quantize(p color.Palette, m image.Image) color.Palette {
	return append(p, q.reduce(histogram(m))...)
}

type colorCount struct {
	c [3]uint8
	n int
}

func (h colorCount) rgba() color.RGBA {
	return color.RGBA{R: h.c[0], G: h.c[1], B: h.c[2], A: 0xff}
}

// histogram counts the straight colours of all pixels at or above the alpha
// threshold, sorted for a deterministic palette order.
func histogram(m image.Image) []colorCount {
	b := m.Bounds()
	counts := make(map[[3]uint8]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if uint32(c.A)*0x101 < alphaThreshold {
				continue
			}
			counts[[3]uint8{c.R, c.G, c.B}]++
		}
	}

	hist := make([]colorCount, 0, len(counts))
	for c, n := range counts {
		hist = append(hist, colorCount{c: c, n: n})
	}
	sort.Slice(hist, func(i, j int) bool {
		a, b := hist[i].c, hist[j].c
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return hist
}

func (q MedianCut) reduce(hist []colorCount) color.Palette {
	n := q.NumColors
	if n <= 0 || n > maxColors {
		n = maxColors
	}
	if len(hist) == 0 {
		return nil
	}

	boxes := [][]colorCount{hist}
	for len(boxes) < n {
		i, ch := widestBox(boxes)
		if i < 0 {
			break
		}
		box := boxes[i]
		sort.Slice(box, func(a, b int) bool { return box[a].c[ch] < box[b].c[ch] })
		cut := medianIndex(box)
		boxes[i] = box[:cut]
		boxes = append(boxes, box[cut:])
	}

	p := make(color.Palette, len(boxes))
	for i, box := range boxes {
		p[i] = mean(box)
	}
	return p
}

// widestBox returns the splittable box with the largest channel range and
// that channel, or -1 when every box holds a single colour.
func widestBox(boxes [][]colorCount) (int, int) {
	best, bestCh, bestRange := -1, 0, -1
	for i, box := range boxes {
		if len(box) < 2 {
			continue
		}
		for ch := 0; ch < 3; ch++ {
			lo, hi := uint8(255), uint8(0)
			for _, h := range box {
				lo = min(lo, h.c[ch])
				hi = max(hi, h.c[ch])
			}
			if r := int(hi) - int(lo); r > bestRange {
				best, bestCh, bestRange = i, ch, r
			}
		}
	}
	return best, bestCh
}

// medianIndex returns the split point that halves the pixel count of a
// sorted box, keeping both halves non-empty.
func medianIndex(box []colorCount) int {
	total := 0
	for _, h := range box {
		total += h.n
	}
	acc := 0
	for i, h := range box {
		acc += h.n
		if acc*2 >= total {
			return min(max(i+1, 1), len(box)-1)
		}
	}
	return len(box) / 2
}

func mean(box []colorCount) color.RGBA {
	var r, g, b, n uint64
	for _, h := range box {
		w := uint64(h.n)
		r += uint64(h.c[0]) * w
		g += uint64(h.c[1]) * w
		b += uint64(h.c[2]) * w
		n += w
	}
	return color.RGBA{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((b + n/2) / n),
		A: 0xff,
	}
}

// transparencyMask reports, per pixel in row order, whether the pixel falls
// below the alpha threshold. It returns nil when no pixel does.
func transparencyMask(m image.Image) []bool {
	if isOpaque(m) {
		return nil
	}
	b := m.Bounds()
	mask := make([]bool, b.Dx()*b.Dy())
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a < alphaThreshold {
				mask[(y-b.Min.Y)*b.Dx()+(x-b.Min.X)] = true
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return mask
}

// isOpaque reports whether m declares itself fully opaque.
func isOpaque(m image.Image) bool {
	o, ok := m.(interface{ Opaque() bool })
	return ok && o.Opaque()
}

// opaqueCopy returns m with every pixel's straight colour at full alpha.
func opaqueCopy(m image.Image) *image.NRGBA {
	b := m.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

// makeRoom returns a copy of a fixed palette with at most maxColors-1
// entries. A full palette loses the entry closest to another one.
func makeRoom(p color.Palette) color.Palette {
	out := append(color.Palette(nil), p...)
	if len(out) < maxColors {
		return out
	}

	drop, best := len(out)-1, uint32(1<<32-1)
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if d := sqDiff(out[i], out[j]); d < best {
				drop, best = j, d
			}
		}
	}
	return append(out[:drop], out[drop+1:]...)
}

func sqDiff(a, b color.Color) uint32 {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) uint32 {
		v := int64(x>>8) - int64(y>>8)
		return uint32(v * v)
	}
	return d(ar, br) + d(ag, bg) + d(ab, bb)
}
