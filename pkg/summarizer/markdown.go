package summarizer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", l10n.T("Conversion Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", l10n.T("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Source"))
	writeTableHeader(&sb)
	fmt.Fprintf(&sb, "| %s | `%s` |\n", l10n.T("Directory"), s.Source.Dir)
	fmt.Fprintf(&sb, "| %s | %d |\n\n", l10n.T("Images"), len(s.Source.Files))
	if len(s.Source.Files) > 0 {
		for i, name := range s.Source.Files {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Settings"))
	writeTableHeader(&sb)
	fmt.Fprintf(&sb, "| %s | %d fps |\n", l10n.T("Frame rate"), s.Settings.FPS)
	fmt.Fprintf(&sb, "| %s | %d ms |\n", l10n.T("Frame delay"), s.Settings.DelayMs)
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Resize"), formatResize(s.Settings))
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Palette"), s.Settings.Palette)
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Dithering"), onOff(s.Settings.Dither))
	if s.Settings.Background != "" {
		fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Background"), s.Settings.Background)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Output"))
	writeTableHeader(&sb)
	fmt.Fprintf(&sb, "| %s | `%s` |\n", l10n.T("File"), s.Output.Path)
	fmt.Fprintf(&sb, "| %s | %d |\n", l10n.T("Frames"), s.Output.FrameCount)
	fmt.Fprintf(&sb, "| %s | %dx%d |\n", l10n.T("Canvas"), s.Output.CanvasWidth, s.Output.CanvasHeight)
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Duration"), formatDuration(s.Output.DurationMs))
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Loop"), formatLoop(s.Output.LoopCount))
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Size"), humanize.Bytes(uint64(s.Output.FileSize)))

	return sb.String()
}

func writeTableHeader(sb *strings.Builder) {
	fmt.Fprintf(sb, "| %s | %s |\n|---|---|\n", l10n.T("Item"), l10n.T("Value"))
}

func formatResize(s Settings) string {
	if s.Width > 0 && s.Height > 0 {
		return fmt.Sprintf("%dx%d (%s)", s.Width, s.Height, s.Filter)
	}
	return l10n.T("none")
}

func formatDuration(ms int) string {
	if ms < 1000 {
		return fmt.Sprintf("%d ms", ms)
	}
	return fmt.Sprintf("%.2f s", float64(ms)/1000)
}

func formatLoop(n int) string {
	if n == 0 {
		return l10n.T("infinite")
	}
	return humanize.Comma(int64(n))
}

func onOff(b bool) string {
	if b {
		return l10n.T("on")
	}
	return l10n.T("off")
}
