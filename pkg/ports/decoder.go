package ports

import (
	"image"
	"io"
)

// ImageDecoder decodes still images into raster frames.
// Implementations decide which file names they understand.
type ImageDecoder interface {
	// Supports reports whether a file with this name can be decoded.
	// Matching is done on the extension, case-insensitively.
	Supports(name string) bool

	// Decode decodes the image read from r. The name selects the format.
	Decode(r io.Reader, name string) (image.Image, error)
}

// AnimationFrame is one decoded frame of an animation.
type AnimationFrame struct {
	Image   image.Image
	DelayMs int
}

// Animation is a fully decoded animated image.
type Animation struct {
	Width     int
	Height    int
	LoopCount int // 0 loops forever, -1 plays once
	Frames    []AnimationFrame
}

// AnimationDecoder reads animated images back into frames.
type AnimationDecoder interface {
	Decode(r io.Reader) (*Animation, error)
}
