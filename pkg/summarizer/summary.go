// Package summarizer provides summary generation for conversion results.
package summarizer

import "time"

// Summary contains all data collected during one conversion.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input directory and the files that became frames
	Source SourceInfo

	// Conversion settings
	Settings Settings

	// GIF output details
	Output OutputInfo
}

// SourceInfo describes the input directory.
type SourceInfo struct {
	Dir   string
	Files []string
}

// Settings contains the conversion configuration.
type Settings struct {
	FPS     int
	DelayMs int

	// Zero means the side was not requested
	Width  int
	Height int
	Filter string

	Palette    string
	Dither     bool
	Background string
}

// OutputInfo contains information about the written GIF.
type OutputInfo struct {
	Path         string
	FrameCount   int
	CanvasWidth  int
	CanvasHeight int
	DurationMs   int
	FileSize     int64
	LoopCount    int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the source directory and frame files.
func (b *Builder) WithSource(dir string, files []string) *Builder {
	b.summary.Source = SourceInfo{
		Dir:   dir,
		Files: files,
	}
	return b
}

// WithSettings sets conversion settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
