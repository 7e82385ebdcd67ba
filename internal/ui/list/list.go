// Package list provides a generic scrollable list with a subsequence filter.
package list

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/llehouerou/tracknav/internal/ui/cursor"
	"github.com/llehouerou/tracknav/internal/ui/render"
	"github.com/llehouerou/tracknav/internal/ui/screen"
)

// Navigator is the item-type independent surface of a list, shared by every
// view that owns one.
type Navigator interface {
	Len() int
	MatchCount() int
	IsEmpty() bool
	Filter() (string, bool)
	SetFilter(text string)
	ClearFilter()
	MoveUp()
	MoveDown()
	MoveTop()
	MoveBottom()
	SelectedIndex() int
	SetSize(height, width int)
	Render(s screen.Surface, x, y int, resetCursor bool)
}

// Model is a scrollable list over a fixed set of items. The cursor and the
// scroll offset index into the matching subsequence, not into the items.
type Model[T fmt.Stringer] struct {
	items    []T
	matching []int
	cursor   cursor.Cursor
	height   int
	width    int
	filter   *string
}

var _ Navigator = (*Model[fmt.Stringer])(nil)

// New creates a list showing every item, cursor on the first one.
func New[T fmt.Stringer](items []T, height, width int) *Model[T] {
	m := &Model[T]{
		items:  items,
		cursor: cursor.New(),
		height: height,
		width:  width,
	}
	m.refresh()
	return m
}

// Matches reports whether filter occurs in text as an in-order, case-sensitive
// subsequence. The empty filter matches everything.
func Matches(filter, text string) bool {
	return fuzzy.Match(filter, text)
}

func (m *Model[T]) refresh() {
	m.matching = m.matching[:0]
	for i, item := range m.items {
		if m.filter == nil || Matches(*m.filter, render.Sanitize(item.String())) {
			m.matching = append(m.matching, i)
		}
	}
	if m.cursor.Pos() >= len(m.matching) {
		m.cursor.Reset()
	}
}

// Items returns the full, unfiltered item slice.
func (m *Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items regardless of the filter.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// MatchCount returns the number of items passing the filter.
func (m *Model[T]) MatchCount() int {
	return len(m.matching)
}

// IsEmpty reports whether no item passes the filter.
func (m *Model[T]) IsEmpty() bool {
	return len(m.matching) == 0
}

// Filter returns the active filter and whether one is set.
func (m *Model[T]) Filter() (string, bool) {
	if m.filter == nil {
		return "", false
	}
	return *m.filter, true
}

// SetFilter stores text as the filter and moves the cursor to the first match.
func (m *Model[T]) SetFilter(text string) {
	m.filter = &text
	m.cursor.Reset()
	m.refresh()
}

// ClearFilter removes the filter and returns the cursor and scroll to the top.
func (m *Model[T]) ClearFilter() {
	m.filter = nil
	m.cursor.Reset()
	m.refresh()
}

// Cursor returns the cursor position within the matching items.
func (m *Model[T]) Cursor() int {
	return m.cursor.Pos()
}

// Offset returns the first visible matching position.
func (m *Model[T]) Offset() int {
	return m.cursor.Offset()
}

func (m *Model[T]) MoveDown() {
	m.cursor.Down(len(m.matching), m.height)
}

func (m *Model[T]) MoveUp() {
	m.cursor.Up()
}

func (m *Model[T]) MoveTop() {
	m.cursor.Top()
}

func (m *Model[T]) MoveBottom() {
	m.cursor.Bottom(len(m.matching), m.height)
}

// SelectedIndex returns the index into Items of the selection. It panics when
// nothing matches; check IsEmpty first.
func (m *Model[T]) SelectedIndex() int {
	if len(m.matching) == 0 {
		panic("list: selection on empty match set")
	}
	return m.matching[m.cursor.Pos()]
}

// SelectedItem returns a copy of the selected item. It panics when nothing
// matches.
func (m *Model[T]) SelectedItem() T {
	return m.items[m.SelectedIndex()]
}

// SetSize changes the viewport, keeping the cursor on screen.
func (m *Model[T]) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.cursor.Fit(height)
}

// Render draws the visible rows at (x, y). With resetCursor the selection
// snaps back to the first match before drawing.
func (m *Model[T]) Render(s screen.Surface, x, y int, resetCursor bool) {
	if len(m.items) == 0 {
		return
	}
	if resetCursor {
		m.cursor.Reset()
	}
	m.refresh()

	start, end := m.cursor.VisibleRange(len(m.matching), m.height)
	for i := start; i < end; i++ {
		style := screen.Normal
		if i == m.cursor.Pos() {
			style = screen.Emphasized
		}
		text := m.items[m.matching[i]].String()
		s.Print(x, y+i-start, style, render.Row(text, m.width))
	}
}
