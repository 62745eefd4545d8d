package main

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/img2gif/pkg/adapters/gifdecoder"
	"github.com/user/img2gif/pkg/adapters/osfilesystem"
	"github.com/user/img2gif/pkg/ports"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     l10n.T("Show frames, delays and loop count of a GIF"),
		ArgsUsage: "<file.gif>",
		Action:    runInspect,
	}
}

// runInspect executes the inspect command.
func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("Usage: img2gif inspect <file.gif>"), 2)
	}
	path := c.Args().First()

	data, err := osfilesystem.New().ReadFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	anim, err := gifdecoder.New().Decode(bytes.NewReader(data))
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
	}

	w := c.App.Writer
	fmt.Fprintln(w, l10n.F("File: %s (%s)", path, humanize.Bytes(uint64(len(data)))))
	fmt.Fprintln(w, l10n.F("Canvas: %dx%d", anim.Width, anim.Height))
	fmt.Fprintln(w, l10n.F("Frames: %d", len(anim.Frames)))
	fmt.Fprintln(w, l10n.F("Loop: %s", describeLoop(anim)))
	fmt.Fprintln(w, l10n.F("Duration: %d ms", gifdecoder.TotalDurationMs(anim)))
	for i, f := range anim.Frames {
		b := f.Image.Bounds()
		fmt.Fprintln(w, l10n.F("  #%d %dx%d %d ms", i, b.Dx(), b.Dy(), f.DelayMs))
	}
	return nil
}

// describeLoop renders the GIF loop count: 0 repeats forever, -1 plays once.
func describeLoop(anim *ports.Animation) string {
	switch {
	case anim.LoopCount == 0:
		return l10n.T("infinite")
	case anim.LoopCount < 0:
		return l10n.T("once")
	default:
		return l10n.F("%d repeats", anim.LoopCount)
	}
}
