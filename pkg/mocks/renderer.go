package mocks

import (
	"image"
	"image/color"

	"github.com/user/img2gif/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	ResizeImageFunc func(img image.Image, width, height int, filter ports.ResampleFilter) image.Image
	FlattenFunc     func(img image.Image, bg color.Color) image.Image
	EncodePNGFunc   func(img image.Image) ([]byte, error)

	// Recorded calls for verification
	ResizeCalls  []ResizeCall
	FlattenCalls int
}

// ResizeCall records a call to ResizeImage.
type ResizeCall struct {
	Width, Height int
	Filter        ports.ResampleFilter
}

func (m *Renderer) ResizeImage(img image.Image, width, height int, filter ports.ResampleFilter) image.Image {
	m.ResizeCalls = append(m.ResizeCalls, ResizeCall{Width: width, Height: height, Filter: filter})
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height, filter)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) Flatten(img image.Image, bg color.Color) image.Image {
	m.FlattenCalls++
	if m.FlattenFunc != nil {
		return m.FlattenFunc(img, bg)
	}
	return img
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ ports.Renderer = (*Renderer)(nil)
