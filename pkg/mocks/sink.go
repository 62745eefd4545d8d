package mocks

import (
	"image"
	"sync"

	"github.com/user/img2gif/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	FileList []byte
	Frames   map[int]image.Image

	SaveFileListFunc func(data []byte) error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveFileList(data []byte) error {
	if m.SaveFileListFunc != nil {
		return m.SaveFileListFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FileList = data
	return nil
}

func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                              { return false }
func (m *NullSink) SaveFileList(data []byte) error             { return nil }
func (m *NullSink) SaveFrame(index int, img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
