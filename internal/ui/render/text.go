// Package render provides text helpers for fixed-width terminal layout.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from remote text
// such as photo titles. Tabs and no-break spaces become plain spaces.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size == 1:
		case r == '\t', r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || r == '\t' || r == '\u00a0' || unicode.IsControl(r) {
			return true
		}
		i += size
	}
	return false
}

// Truncate shortens s to maxWidth display columns, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Fit truncates s if needed and pads it to exactly width columns.
func Fit(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row puts left and right at the two ends of a width-column line, keeping
// at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Rule repeats ch to fill width columns.
func Rule(ch string, width int) string {
	if width <= 0 || ch == "" {
		return ""
	}
	return strings.Repeat(ch, width/max(runewidth.StringWidth(ch), 1))
}

// Blank returns width spaces.
func Blank(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
