package ports

import (
	"image"
)

// AnimationEncoder abstracts animated image encoding.
type AnimationEncoder interface {
	// Begin starts a new animation with the given logical screen size.
	Begin(width, height int, opts EncoderOptions) error

	// EncodeFrame appends a frame shown for delayMs milliseconds.
	EncodeFrame(img image.Image, delayMs int) error

	// End finalizes the animation and returns the encoded bytes.
	End() ([]byte, error)

	// FrameDelayMs returns the duration actually stored for a requested
	// delay, after the container's timing granularity is applied.
	FrameDelayMs(delayMs int) int
}

// EncoderOptions configures animation encoding.
type EncoderOptions struct {
	LoopCount int    // 0 loops forever
	Palette   string // adaptive, plan9 or websafe
	Dither    bool   // Floyd-Steinberg error diffusion
}

// Palette names understood by animation encoders. Adaptive builds a palette
// per frame from its own colours; the others are fixed.
const (
	PaletteAdaptive = "adaptive"
	PalettePlan9    = "plan9"
	PaletteWebSafe  = "websafe"
)

// PaletteNames lists every supported palette name.
var PaletteNames = []string{PaletteAdaptive, PalettePlan9, PaletteWebSafe}
