package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/tracknav/internal/ui/render"
)

type cell struct {
	r     rune // 0 for the trailing half of a wide rune
	style Style
}

// Buffer is an in-memory Surface. It is what the terminal backend draws into
// before a frame is presented, and what tests inspect.
type Buffer struct {
	width, height int
	cells         []cell
	presented     int
}

// Verify Buffer implements Surface at compile time.
var _ Surface = (*Buffer)(nil)

// NewBuffer creates a cleared buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize changes the buffer dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
	b.cells = make([]cell, b.width*b.height)
	b.Clear()
}

// Clear resets every cell to a blank in the normal style.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{r: ' '}
	}
}

// Print writes text starting at (x, y). Text running past the right edge is
// clipped; a wide rune that does not fit is dropped.
func (b *Buffer) Print(x, y int, style Style, text string) {
	if y < 0 || y >= b.height || x >= b.width {
		return
	}
	text = render.Sanitize(ansi.Strip(text))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > b.width {
			return
		}
		if x >= 0 {
			b.cells[y*b.width+x] = cell{r: r, style: style}
			if w == 2 {
				b.cells[y*b.width+x+1] = cell{r: 0, style: style}
			}
		}
		x += w
	}
}

// Present counts presented frames; the buffer itself has nowhere to flush to.
func (b *Buffer) Present() {
	b.presented++
}

// Presented returns how many times Present was called.
func (b *Buffer) Presented() int {
	return b.presented
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells.
func (b *Buffer) Height() int {
	return b.height
}

// Line returns the plain text of row y, including trailing blanks.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.r != 0 {
			sb.WriteRune(c.r)
		}
	}
	return sb.String()
}

// StyleAt returns the style of the cell at (x, y).
func (b *Buffer) StyleAt(x, y int) Style {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Normal
	}
	return b.cells[y*b.width+x].style
}

// String returns the plain text of the whole buffer, one line per row.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range b.height {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Render serializes the buffer to a styled string. Consecutive cells sharing a
// style are rendered as one run through paint.
func (b *Buffer) Render(paint func(Style, string) string) string {
	lines := make([]string, b.height)
	for y := range b.height {
		var line, run strings.Builder
		row := b.cells[y*b.width : (y+1)*b.width]
		current := Normal
		for i, c := range row {
			if i > 0 && c.style != current {
				line.WriteString(paint(current, run.String()))
				run.Reset()
			}
			current = c.style
			if c.r != 0 {
				run.WriteRune(c.r)
			}
		}
		if run.Len() > 0 {
			line.WriteString(paint(current, run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
