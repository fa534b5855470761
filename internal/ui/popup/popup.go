package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/photogrid/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	Width     int // Fixed width in columns (0 = auto-fit)
}

// Common size configurations.
var (
	SizeSearch = SizeConfig{Width: 60}    // search prompt
	SizeAuto   = SizeConfig{}             // help
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.Width > 0 {
		width = size.Width
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4
	height = min(height, screenH-4)
	return width, height
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center places a pre-rendered box in the middle of the screen. Lines
// above the box are blank so Compose leaves the base visible there.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-maxLineWidth(box))/2, 0)

	var sb strings.Builder
	for range padTop {
		sb.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		sb.WriteString(indent)
		sb.WriteString(line)
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Compose draws overlay on top of base. On each overlay line the span from
// the first to the last visible non-space column replaces the base; the
// rest of the base line is kept. Both may contain ANSI styling.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		end := ansi.StringWidth(trimmed)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}

		var suffix string
		if end < width {
			suffix = ansi.Cut(under, end, width)
			// A wide rune cut at end may shift the suffix by one column.
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix = strings.Repeat(" ", width-end-w) + suffix
			} else if w > width-end {
				suffix = ansi.TruncateLeft(suffix, w-(width-end), "")
			}
		}

		baseLines[i] = prefix + ansi.Cut(line, start, end) + suffix
	}

	return strings.Join(baseLines, "\n")
}
