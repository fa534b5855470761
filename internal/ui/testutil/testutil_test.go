package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "cats", "cats"},
		{"color codes", "\x1b[31mred\x1b[0m", "red"},
		{"cursor save and restore", "\x1b[sX\x1b[u", "X"},
		{"kitty graphics command", "a\x1b_Ga=d,d=a,q=2\x1b\\b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	out := "header\ncats · 20 photos\nfooter"

	if got := FindLine(out, "cats"); got != "cats · 20 photos" {
		t.Errorf("FindLine = %q", got)
	}
	if FindLine(out, "dogs") != "" {
		t.Error("FindLine should return empty for missing text")
	}
	if !ContainsLine(out, "footer") {
		t.Error("ContainsLine(footer) = false")
	}
	if got := LineIndex(out, "footer"); got != 2 {
		t.Errorf("LineIndex = %d, want 2", got)
	}
	if got := LineIndex(out, "dogs"); got != -1 {
		t.Errorf("LineIndex(missing) = %d, want -1", got)
	}
}

func TestAssertContains(t *testing.T) {
	if msg := AssertContains("\x1b[1mcats\x1b[0m", "cats"); msg != "" {
		t.Errorf("AssertContains: %s", msg)
	}
	if msg := AssertContains("cats", "dogs"); msg == "" {
		t.Error("AssertContains should fail for missing text")
	}
	if msg := AssertNotContains("cats", "dogs"); msg != "" {
		t.Errorf("AssertNotContains: %s", msg)
	}
	if msg := AssertNotContains("cats", "cats"); msg == "" {
		t.Error("AssertNotContains should fail for present text")
	}
}
