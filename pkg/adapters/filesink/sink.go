// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/img2gif/pkg/ports"
)

// Sink saves debug output under a base directory:
//
//	files.json         collected source files
//	frames/NNNN.png    each frame after loading and resizing
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveFileList saves the collected file list as JSON.
func (s *Sink) SaveFileList(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "files.json"), data)
}

// SaveFrame saves a loaded frame as PNG.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	path := filepath.Join(s.baseDir, "frames", fmt.Sprintf("%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
