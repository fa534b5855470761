package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with its foreground blended from one hex color to
// another across grapheme clusters, in HCL space. Non-hex colors (ANSI
// indexes) cannot be blended; the text is then drawn in from.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	base := lipgloss.NewStyle().Bold(bold)

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	start, errFrom := colorful.Hex(string(from))
	end, errTo := colorful.Hex(string(to))
	if len(clusters) == 1 || errFrom != nil || errTo != nil {
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// ApplyBoldGradient is Gradient for bold titles.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return Gradient(text, from, to, true)
}
