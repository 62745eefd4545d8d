// Package ggrenderer provides frame pixel operations: resampling with bild and
// background flattening with the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/fogleman/gg"

	"github.com/user/img2gif/pkg/ports"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// ResampleFilter maps a filter name to its bild kernel.
// Unknown names fall back to Lanczos.
func ResampleFilter(name ports.ResampleFilter) transform.ResampleFilter {
	switch name {
	case ports.FilterCatmullRom:
		return transform.CatmullRom
	case ports.FilterMitchell:
		return transform.MitchellNetravali
	case ports.FilterLinear:
		return transform.Linear
	case ports.FilterBox:
		return transform.Box
	case ports.FilterNearest:
		return transform.NearestNeighbor
	default:
		return transform.Lanczos
	}
}

// ResizeImage resamples an image to exactly width x height.
// Aspect ratio is not preserved.
func (r *Renderer) ResizeImage(img image.Image, width, height int, filter ports.ResampleFilter) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return transform.Resize(img, width, height, ResampleFilter(filter))
}

// Flatten draws img over an opaque canvas filled with bg.
func (r *Renderer) Flatten(img image.Image, bg color.Color) image.Image {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(bg)
	dc.Clear()
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	return dc.Image()
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
