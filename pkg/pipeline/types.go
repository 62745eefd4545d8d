package pipeline

import (
	"image"
	"image/color"

	"github.com/user/img2gif/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// IsZero reports whether no dimension was given.
func (d Dimension) IsZero() bool {
	return d.Width == 0 && d.Height == 0
}

// Complete reports whether both width and height are set.
func (d Dimension) Complete() bool {
	return d.Width > 0 && d.Height > 0
}

// Frame is one decoded raster image destined to become one animation frame.
type Frame struct {
	Index  int    // Position in the sequence
	Source string // Path of the file it was decoded from
	Image  image.Image
}

// =============================================================================
// Collect Stage Types
// =============================================================================

// CollectInput names the directory to scan.
type CollectInput struct {
	Dir string
}

// SourceFile is a directory entry accepted by the collector.
type SourceFile struct {
	Name string // Base name, used for ordering
	Path string // Dir joined with Name
}

// CollectResult holds the accepted files in lexicographic name order.
// An empty Files slice means there is nothing to convert.
type CollectResult struct {
	Files []SourceFile
}

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput contains parameters for decoding and resizing.
type LoadInput struct {
	Files  []SourceFile
	Resize Dimension // Applied only when both sides are set
	Filter ports.ResampleFilter

	// Background, when set, replaces transparency with an opaque colour.
	Background color.Color
}

// LoadResult contains the frame sequence in source order.
type LoadResult struct {
	Frames []Frame
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for animation encoding.
type EncodeInput struct {
	Frames    []Frame
	DelayMs   int // Identical for every frame
	LoopCount int // 0 loops forever
	Palette   string
	Dither    bool
}

// EncodeResult contains the encoded animation.
type EncodeResult struct {
	Data         []byte
	Canvas       Dimension
	FrameCount   int
	// FrameDelayMs is the per-frame delay as stored, which may be
	// shorter than the requested one.
	FrameDelayMs int
	DurationMs   int
	FileSize     int64
}
