// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"

	"github.com/user/img2gif/pkg/pipeline"
	"github.com/user/img2gif/pkg/ports"
)

// Config contains all parameters of one conversion.
type Config struct {
	// Input/Output
	SourceDir  string
	OutputPath string

	// Timing
	FPS int

	// Resize, applied only when both are set
	Width  int
	Height int
	Filter ports.ResampleFilter

	// Style
	Background color.Color // nil keeps transparency as decoded
	Palette    string
	Dither     bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputPath: "output.gif",
		FPS:        10,
		Filter:     ports.FilterLanczos,
		Palette:    ports.PaletteAdaptive,
		Dither:     true,
	}
}

// DelayMs returns the per-frame duration, 1000/FPS truncated.
func (c Config) DelayMs() int {
	if c.FPS <= 0 {
		return 0
	}
	return 1000 / c.FPS
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	collectStage pipeline.Stage[pipeline.CollectInput, pipeline.CollectResult]
	loadStage    pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	collectStage pipeline.Stage[pipeline.CollectInput, pipeline.CollectResult],
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		collectStage: collectStage,
		loadStage:    loadStage,
		encodeStage:  encodeStage,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// RunResult describes a finished conversion.
type RunResult struct {
	// NoImages is set when the directory held nothing to convert.
	// No output file is written in that case.
	NoImages bool

	Files      []string // Source names in frame order
	OutputPath string
	FrameCount int
	Canvas     pipeline.Dimension
	DelayMs    int // As stored in the output
	LoopCount  int
	DurationMs int
	FileSize   int64
}

// Run executes the complete pipeline. Nothing is written unless every frame
// decoded and the animation encoded successfully.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if config.FPS <= 0 {
		return RunResult{}, fmt.Errorf("fps must be positive, got %d", config.FPS)
	}

	o.logger.Info("Converting images in %s", config.SourceDir)

	// 1. Collect files
	collected, err := o.collectStage.Execute(ctx, pipeline.CollectInput{Dir: config.SourceDir})
	if err != nil {
		o.logger.Error("Failed to collect images: %s", err)
		return RunResult{}, fmt.Errorf("collect stage: %w", err)
	}
	if len(collected.Files) == 0 {
		o.logger.Info("No images found in the specified folder.")
		return RunResult{NoImages: true}, nil
	}
	o.logger.Info("Found %d images", len(collected.Files))

	names := make([]string, len(collected.Files))
	for i, f := range collected.Files {
		names[i] = f.Name
	}
	if o.sink.Enabled() {
		o.saveFileList(names)
	}

	// 2. Load frames
	loaded, err := o.loadStage.Execute(ctx, o.buildLoadInput(config, collected))
	if err != nil {
		o.logger.Error("Failed to load frames: %s", err)
		return RunResult{}, fmt.Errorf("load stage: %w", err)
	}
	o.logger.Info("Loaded %d frames", len(loaded.Frames))

	// 3. Encode animation
	encodeInput := o.buildEncodeInput(config, loaded)
	encoded, err := o.encodeStage.Execute(ctx, encodeInput)
	if err != nil {
		o.logger.Error("Failed to encode animation: %s", err)
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info("Encoded %d frames (%s)", encoded.FrameCount, humanize.Bytes(uint64(encoded.FileSize)))

	// 4. Write output file
	if err := o.fs.WriteFile(config.OutputPath, encoded.Data); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info("GIF created and saved at %s", config.OutputPath)

	return RunResult{
		Files:      names,
		OutputPath: config.OutputPath,
		FrameCount: encoded.FrameCount,
		Canvas:     encoded.Canvas,
		DelayMs:    encoded.FrameDelayMs,
		LoopCount:  encodeInput.LoopCount,
		DurationMs: encoded.DurationMs,
		FileSize:   encoded.FileSize,
	}, nil
}

func (o *Orchestrator) saveFileList(names []string) {
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		o.logger.Warn("Failed to save file list: %s", err)
		return
	}
	if err := o.sink.SaveFileList(data); err != nil {
		o.logger.Warn("Failed to save file list: %s", err)
	}
}

func (o *Orchestrator) buildLoadInput(config Config, collected pipeline.CollectResult) pipeline.LoadInput {
	return pipeline.LoadInput{
		Files:      collected.Files,
		Resize:     pipeline.Dimension{Width: config.Width, Height: config.Height},
		Filter:     config.Filter,
		Background: config.Background,
	}
}

func (o *Orchestrator) buildEncodeInput(config Config, loaded pipeline.LoadResult) pipeline.EncodeInput {
	return pipeline.EncodeInput{
		Frames:    loaded.Frames,
		DelayMs:   config.DelayMs(),
		LoopCount: 0,
		Palette:   config.Palette,
		Dither:    config.Dither,
	}
}
