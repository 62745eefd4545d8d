// Package collect implements the file collection stage.
package collect

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/user/img2gif/pkg/pipeline"
	"github.com/user/img2gif/pkg/ports"
)

// Stage lists a directory and keeps the files the decoder understands.
type Stage struct {
	fs      ports.FileSystem
	decoder ports.ImageDecoder
	logger  ports.Logger
}

// NewStage creates a new collect stage.
func NewStage(fs ports.FileSystem, decoder ports.ImageDecoder, logger ports.Logger) *Stage {
	return &Stage{
		fs:      fs,
		decoder: decoder,
		logger:  logger.WithComponent("collect"),
	}
}

// Execute returns the supported files of input.Dir sorted by name.
// Subdirectories are skipped even when their name looks like an image.
// Names are compared bytewise, so "img10.png" sorts before "img2.png".
func (s *Stage) Execute(ctx context.Context, input pipeline.CollectInput) (pipeline.CollectResult, error) {
	result := pipeline.CollectResult{Files: []pipeline.SourceFile{}}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	s.logger.Debug("Scanning %s", input.Dir)
	entries, err := s.fs.ReadDir(input.Dir)
	if err != nil {
		return result, fmt.Errorf("read directory %s: %w", input.Dir, err)
	}

	for _, e := range entries {
		if e.IsDir || !s.decoder.Supports(e.Name) {
			s.logger.Debug("Skipped %s", e.Name)
			continue
		}
		result.Files = append(result.Files, pipeline.SourceFile{
			Name: e.Name,
			Path: filepath.Join(input.Dir, e.Name),
		})
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Name < result.Files[j].Name
	})
	for _, f := range result.Files {
		s.logger.Debug("Accepted %s", f.Name)
	}
	s.logger.Debug("Collected %d of %d entries", len(result.Files), len(entries))

	return result, nil
}
