package ports

import (
	"image"
)

// DebugSink receives intermediate results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveFileList saves the collected source file list as JSON.
	SaveFileList(data []byte) error

	// SaveFrame saves a loaded (and possibly resized) frame.
	SaveFrame(index int, img image.Image) error
}
