package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts pixel operations applied to loaded frames.
type Renderer interface {
	// ResizeImage resamples an image to exactly width x height.
	ResizeImage(img image.Image, width, height int, filter ResampleFilter) image.Image

	// Flatten composites an image over an opaque background colour.
	Flatten(img image.Image, bg color.Color) image.Image

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}

// ResampleFilter names a resampling kernel.
type ResampleFilter string

const (
	FilterLanczos    ResampleFilter = "lanczos"
	FilterCatmullRom ResampleFilter = "catmullrom"
	FilterMitchell   ResampleFilter = "mitchell"
	FilterLinear     ResampleFilter = "linear"
	FilterBox        ResampleFilter = "box"
	FilterNearest    ResampleFilter = "nearest"
)

// ResampleFilters lists every supported filter name.
var ResampleFilters = []ResampleFilter{
	FilterLanczos,
	FilterCatmullRom,
	FilterMitchell,
	FilterLinear,
	FilterBox,
	FilterNearest,
}
