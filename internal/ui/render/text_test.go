package render

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello", "hello"},
		{"control characters dropped", "he\x1bllo\n", "hello"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"unicode kept", "Björk – Jóga", "Björk – Jóga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"cut with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty", "", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("abc", 6); got != "abc   " {
		t.Errorf("Pad = %q, want %q", got, "abc   ")
	}
	if got := Pad("abcdef", 3); got != "abcdef" {
		t.Errorf("Pad on wider string = %q, want unchanged", got)
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padded", "foo", 8, " foo    "},
		{"exact", "foo", 4, " foo"},
		{"truncated", "foobar", 5, " foo…"},
		{"no room", "foo", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Row(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
			if tt.width > 0 && runewidth.StringWidth(got) != tt.width {
				t.Errorf("Row width = %d, want %d", runewidth.StringWidth(got), tt.width)
			}
		})
	}
}

func TestRow_WideRunes(t *testing.T) {
	got := Row("日本語の曲", 8)
	if w := runewidth.StringWidth(got); w != 8 {
		t.Errorf("Row width = %d, want 8 (%q)", w, got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{65 * time.Second, "1:05"},
		{10*time.Minute + 3*time.Second, "10:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
