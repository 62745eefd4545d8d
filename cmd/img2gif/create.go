package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/img2gif/pkg/adapters/filesink"
	"github.com/user/img2gif/pkg/adapters/ggrenderer"
	"github.com/user/img2gif/pkg/adapters/gifencoder"
	"github.com/user/img2gif/pkg/adapters/logger"
	"github.com/user/img2gif/pkg/adapters/nullsink"
	"github.com/user/img2gif/pkg/adapters/osfilesystem"
	"github.com/user/img2gif/pkg/adapters/smartdecoder"
	"github.com/user/img2gif/pkg/config"
	"github.com/user/img2gif/pkg/orchestrator"
	"github.com/user/img2gif/pkg/ports"
	"github.com/user/img2gif/pkg/stages/collect"
	"github.com/user/img2gif/pkg/stages/encode"
	"github.com/user/img2gif/pkg/stages/load"
	"github.com/user/img2gif/pkg/summarizer"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     l10n.T("Convert a folder of images into an animated GIF"),
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			// Output
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "output.gif", Category: l10n.T("Output"), Usage: l10n.T("Output GIF file path")},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: l10n.T("Output"), Usage: l10n.T("YAML configuration file")},
			&cli.StringFlag{Name: "summary", Category: l10n.T("Output"), Usage: l10n.T("Write a Markdown summary to this path")},

			// Timing and size
			&cli.IntFlag{Name: "fps", Aliases: []string{"f"}, Value: 10, Category: l10n.T("Animation"), Usage: l10n.T("Frames per second")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Category: l10n.T("Animation"), Usage: l10n.T("Resize width (requires --height)")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Category: l10n.T("Animation"), Usage: l10n.T("Resize height (requires --width)")},
			&cli.StringFlag{Name: "filter", Value: string(ports.FilterLanczos), Category: l10n.T("Animation"), Usage: l10n.T("Resampling filter (lanczos, catmullrom, mitchell, linear, box, nearest)")},

			// Colour
			&cli.StringFlag{Name: "background", Category: l10n.T("Color"), Usage: l10n.T("Flatten transparent pixels onto this color (hex, e.g. #ffffff)")},
			&cli.StringFlag{Name: "palette", Value: ports.PaletteAdaptive, Category: l10n.T("Color"), Usage: l10n.T("GIF palette (adaptive, plan9, websafe)")},
			&cli.BoolFlag{Name: "no-dither", Category: l10n.T("Color"), Usage: l10n.T("Disable Floyd-Steinberg dithering")},

			// Debug and logging
			&cli.StringFlag{Name: "debug-dir", Category: l10n.T("Debug"), Usage: l10n.T("Directory for debug output")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Category: l10n.T("Logging"), Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: l10n.T("Logging"), Usage: l10n.T("Suppress all log output")},
		},
		Action: runCreate,
	}
}

// buildConfig layers defaults, the optional config file and explicitly set
// flags, in that order, then validates the result.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.NArg() > 0 {
		cfg.SourceDir = c.Args().First()
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("filter") {
		cfg.Filter = c.String("filter")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("palette") {
		cfg.Palette = c.String("palette")
	}
	if c.Bool("no-dither") {
		cfg.Dither = false
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if cfg.SourceDir == "" {
		return cfg, fmt.Errorf("%w: source folder is required", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger picks the console logger for the configured level, or the noop
// logger when --quiet is given.
func newLogger(c *cli.Context, levelName string) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	level, _ := ports.ParseLogLevel(levelName)
	if c.App.Writer == os.Stdout {
		return logger.NewConsole(level)
	}
	return logger.NewConsoleTo(level, c.App.Writer, c.App.ErrWriter)
}

// runCreate executes the create command.
func runCreate(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	log := newLogger(c, cfg.LogLevel)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	decoder := smartdecoder.New()
	renderer := ggrenderer.New()
	encoder := gifencoder.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return cli.Exit(fmt.Sprintf("create debug directory: %v", err), 1)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	collectStage := collect.NewStage(fs, decoder, log)
	loadStage := load.NewStage(fs, decoder, renderer, sink, log)
	encodeStage := encode.NewStage(encoder, log)

	orch := orchestrator.New(collectStage, loadStage, encodeStage, fs, sink, log)
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if result.NoImages {
		return nil
	}

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithSource(cfg.SourceDir, result.Files).
			WithSettings(summarizer.Settings{
				FPS:        cfg.FPS,
				DelayMs:    result.DelayMs,
				Width:      cfg.Width,
				Height:     cfg.Height,
				Filter:     cfg.Filter,
				Palette:    cfg.Palette,
				Dither:     cfg.Dither,
				Background: cfg.Background,
			}).
			WithOutput(summarizer.OutputInfo{
				Path:         result.OutputPath,
				FrameCount:   result.FrameCount,
				CanvasWidth:  result.Canvas.Width,
				CanvasHeight: result.Canvas.Height,
				DurationMs:   result.DurationMs,
				FileSize:     result.FileSize,
				LoopCount:    result.LoopCount,
			}).
			Build()

		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := writer.Write(path, summary); err != nil {
			return cli.Exit(fmt.Sprintf("write summary: %v", err), 1)
		}
		log.Info("Summary saved to %s", path)
	}

	return nil
}
