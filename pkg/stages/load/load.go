// Package load implements the frame loading stage: decode, resize, flatten.
package load

import (
	"context"
	"fmt"
	"image"

	"github.com/user/img2gif/pkg/pipeline"
	"github.com/user/img2gif/pkg/ports"
)

// Stage decodes source files into frames, one at a time and in order.
type Stage struct {
	fs       ports.FileSystem
	decoder  ports.ImageDecoder
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new load stage.
func NewStage(
	fs ports.FileSystem,
	decoder ports.ImageDecoder,
	renderer ports.Renderer,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		fs:       fs,
		decoder:  decoder,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("load"),
	}
}

// Execute loads every file of input.Files. The first decode failure aborts
// the whole stage. Frames are resized only when both target sides are set.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	result := pipeline.LoadResult{Frames: make([]pipeline.Frame, 0, len(input.Files))}

	resize := input.Resize.Complete()
	if !resize && !input.Resize.IsZero() {
		s.logger.Warn("Width and height must both be set to resize; keeping source dimensions")
	}
	filter := input.Filter
	if filter == "" {
		filter = ports.FilterLanczos
	}

	for i, file := range input.Files {
		if err := ctx.Err(); err != nil {
			return pipeline.LoadResult{}, err
		}

		img, err := s.decode(file)
		if err != nil {
			return pipeline.LoadResult{}, err
		}

		if resize {
			s.logger.Debug("Resizing frame %d to %dx%d (%s)", i, input.Resize.Width, input.Resize.Height, filter)
			img = s.renderer.ResizeImage(img, input.Resize.Width, input.Resize.Height, filter)
		}
		if input.Background != nil {
			s.logger.Debug("Flattening frame %d onto background", i)
			img = s.renderer.Flatten(img, input.Background)
		}

		if s.sink.Enabled() {
			if err := s.sink.SaveFrame(i, img); err != nil {
				s.logger.Warn("Failed to save debug frame: %s", err)
			}
		}

		result.Frames = append(result.Frames, pipeline.Frame{
			Index:  i,
			Source: file.Path,
			Image:  img,
		})
	}

	return result, nil
}

func (s *Stage) decode(file pipeline.SourceFile) (image.Image, error) {
	s.logger.Debug("Decoding %s", file.Path)

	rc, err := s.fs.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer rc.Close()

	img, err := s.decoder.Decode(rc, file.Name)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file.Path, err)
	}

	b := img.Bounds()
	s.logger.Debug("Decoded %s: %dx%d", file.Name, b.Dx(), b.Dy())
	return img, nil
}
