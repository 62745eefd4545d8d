// Package encode implements the animation encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/img2gif/pkg/pipeline"
	"github.com/user/img2gif/pkg/ports"
)

// Stage encodes the frame sequence into a single animation.
type Stage struct {
	encoder ports.AnimationEncoder
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.AnimationEncoder, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes all frames in order, each shown for input.DelayMs.
// The canvas is large enough to hold the largest frame.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to encode")
	}

	canvas := canvasSize(input.Frames)
	s.logger.Debug("Canvas size %dx%d", canvas.Width, canvas.Height)

	opts := ports.EncoderOptions{
		LoopCount: input.LoopCount,
		Palette:   input.Palette,
		Dither:    input.Dither,
	}
	if err := s.encoder.Begin(canvas.Width, canvas.Height, opts); err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	s.logger.Debug("Encoding %d frames at %d ms per frame", len(input.Frames), input.DelayMs)
	for _, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.encoder.EncodeFrame(frame.Image, input.DelayMs); err != nil {
			return result, fmt.Errorf("encode frame %d (%s): %w", frame.Index, frame.Source, err)
		}
	}

	data, err := s.encoder.End()
	if err != nil {
		return result, fmt.Errorf("end encoding: %w", err)
	}
	s.logger.Debug("Animation encoded: %d bytes", len(data))

	result.Data = data
	result.Canvas = canvas
	result.FrameCount = len(input.Frames)
	result.FrameDelayMs = s.encoder.FrameDelayMs(input.DelayMs)
	result.DurationMs = result.FrameDelayMs * len(input.Frames)
	result.FileSize = int64(len(data))

	return result, nil
}

func canvasSize(frames []pipeline.Frame) pipeline.Dimension {
	var d pipeline.Dimension
	for _, f := range frames {
		b := f.Image.Bounds()
		d.Width = max(d.Width, b.Dx())
		d.Height = max(d.Height, b.Dy())
	}
	return d
}
