// Package screen defines the cell surface the navigator draws onto.
package screen

// Attr is a text attribute applied to a run of cells.
type Attr int

const (
	AttrNormal Attr = iota
	AttrBold
)

// Color is one of the terminal colors the navigator uses.
// ColorDefault leaves the terminal's own foreground/background in place.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorCyan
)

// Style describes how a run of text is drawn.
type Style struct {
	Attr Attr
	Fg   Color
	Bg   Color
}

// Predefined styles.
var (
	// Normal is the default style for list rows and the command line.
	Normal = Style{}

	// Emphasized marks the row under the cursor.
	Emphasized = Style{Attr: AttrBold, Fg: ColorWhite, Bg: ColorBlack}

	// Status is the inverted style of the status line.
	Status = Style{Attr: AttrBold, Fg: ColorWhite, Bg: ColorCyan}
)

// Surface is the render capability the navigator requires.
// Coordinates are in cells, origin top-left.
type Surface interface {
	Clear()
	Print(x, y int, style Style, text string)
	Present()
	Width() int
	Height() int
}
