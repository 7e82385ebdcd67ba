// Package cursor tracks the selection and scroll offset of a list viewport.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than
// stored, since they change with the active filter.
//
// The offset only ever moves by one row at a time: a step that would take
// the cursor outside [offset, offset+height-1] shifts the window by exactly
// that step.
type Cursor struct {
	pos    int // Current cursor position (0-indexed)
	offset int // Scroll offset (first visible item index)
}

// New creates a cursor at the top of the list.
func New() Cursor {
	return Cursor{}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Down advances the cursor by one within a list of listLen items.
// It reports whether the cursor moved.
func (c *Cursor) Down(listLen, height int) bool {
	if c.pos+1 >= listLen {
		return false
	}
	c.pos++
	if c.pos > c.offset+max(height, 1)-1 {
		c.offset++
	}
	return true
}

// Up retreats the cursor by one. It reports whether the cursor moved.
func (c *Cursor) Up() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	if c.pos < c.offset {
		c.offset--
	}
	return true
}

// Top steps up until the cursor reaches the first position.
func (c *Cursor) Top() {
	for c.Up() {
	}
}

// Bottom steps down until the cursor reaches the last position.
func (c *Cursor) Bottom(listLen, height int) {
	for c.Down(listLen, height) {
	}
}

// Fit shifts the offset so the cursor lies within a viewport of height rows.
func (c *Cursor) Fit(height int) {
	height = max(height, 1)
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(c.offset+height, listLen)
	return start, end
}

// Reset resets the cursor to position 0 and offset 0.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}
