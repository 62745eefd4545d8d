package mocks

import (
	"image"

	"github.com/user/img2gif/pkg/ports"
)

// AnimationEncoder is a mock implementation of ports.AnimationEncoder.
type AnimationEncoder struct {
	BeginFunc       func(width, height int, opts ports.EncoderOptions) error
	EncodeFrameFunc func(img image.Image, delayMs int) error
	EndFunc         func() ([]byte, error)
	FrameDelayFunc  func(delayMs int) int

	// Recorded calls for verification
	BeginCalled      bool
	BeginWidth       int
	BeginHeight      int
	BeginOptions     ports.EncoderOptions
	EncodeFrameCalls []EncodeFrameCall
	EndCalled        bool
}

// EncodeFrameCall records a call to EncodeFrame.
type EncodeFrameCall struct {
	Image   image.Image
	DelayMs int
}

func (m *AnimationEncoder) Begin(width, height int, opts ports.EncoderOptions) error {
	m.BeginCalled = true
	m.BeginWidth, m.BeginHeight, m.BeginOptions = width, height, opts
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, opts)
	}
	return nil
}

func (m *AnimationEncoder) EncodeFrame(img image.Image, delayMs int) error {
	m.EncodeFrameCalls = append(m.EncodeFrameCalls, EncodeFrameCall{Image: img, DelayMs: delayMs})
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img, delayMs)
	}
	return nil
}

func (m *AnimationEncoder) End() ([]byte, error) {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	// Minimal GIF header
	return []byte("GIF89a"), nil
}

func (m *AnimationEncoder) FrameDelayMs(delayMs int) int {
	if m.FrameDelayFunc != nil {
		return m.FrameDelayFunc(delayMs)
	}
	return delayMs
}

var _ ports.AnimationEncoder = (*AnimationEncoder)(nil)
