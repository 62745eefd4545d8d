package mocks

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/user/img2gif/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
// By default it accepts .png and .jpg names and returns a 100x100 image.
type ImageDecoder struct {
	SupportsFunc func(name string) bool
	DecodeFunc   func(r io.Reader, name string) (image.Image, error)

	// Recorded calls for verification
	DecodeCalls []string
}

func (m *ImageDecoder) Supports(name string) bool {
	if m.SupportsFunc != nil {
		return m.SupportsFunc(name)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg":
		return true
	}
	return false
}

func (m *ImageDecoder) Decode(r io.Reader, name string) (image.Image, error) {
	m.DecodeCalls = append(m.DecodeCalls, name)
	if m.DecodeFunc != nil {
		return m.DecodeFunc(r, name)
	}
	if !m.Supports(name) {
		return nil, fmt.Errorf("unsupported: %s", name)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
