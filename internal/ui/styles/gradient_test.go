package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"ascii", "photogrid"},
		{"single", "p"},
		{"wide", "写真グリッド"},
		{"combining", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gradient(tt.text, "#ff0084", "#0063dc", true)
			if plain := ansi.Strip(got); plain != tt.text {
				t.Errorf("Gradient(%q) stripped = %q", tt.text, plain)
			}
		})
	}
}

func TestGradient_Empty(t *testing.T) {
	if got := Gradient("", "#ff0084", "#0063dc", false); got != "" {
		t.Errorf("Gradient(\"\") = %q, want empty", got)
	}
}

func TestGradient_NonHexFallsBack(t *testing.T) {
	got := Gradient("grid", lipgloss.Color("212"), "#0063dc", false)
	want := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render("grid")
	if got != want {
		t.Errorf("Gradient with ANSI color = %q, want %q", got, want)
	}
}
