// Package testutil provides helpers for inspecting rendered frames in tests.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tracknav/internal/ui/screen"
)

// Row returns the text of row y of b without trailing blanks.
func Row(b *screen.Buffer, y int) string {
	return strings.TrimRight(b.Line(y), " ")
}

// Rows returns every row of b without trailing blanks.
func Rows(b *screen.Buffer) []string {
	rows := make([]string, b.Height())
	for y := range rows {
		rows[y] = Row(b, y)
	}
	return rows
}

// FrameLines strips styling from a rendered frame and splits it into lines
// without trailing blanks.
func FrameLines(frame string) []string {
	lines := strings.Split(ansi.Strip(frame), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
