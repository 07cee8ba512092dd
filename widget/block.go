package widget

import (
	"github.com/drake/cellview/buffer"
	"github.com/drake/cellview/geom"
	"github.com/drake/cellview/style"
	"github.com/drake/cellview/text"
)

// Compile-time check that Block implements Widget.
var _ Widget = Block{}

// Borders selects which sides of a Block are drawn.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft
)

const (
	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all sides of b are selected.
func (bs Borders) Has(b Borders) bool { return bs&b == b }

// Block is a decorative frame: borders on selected sides plus an
// optional title in the top border. Its Inner rectangle is the content
// area left over for whatever it wraps.
type Block struct {
	borders     Borders
	title       *text.Span
	borderStyle style.Style
	style       style.Style
}

// NewBlock creates a block with no borders and no title.
func NewBlock() Block {
	return Block{}
}

// Borders returns a copy drawing the given sides.
func (b Block) Borders(sides Borders) Block {
	b.borders = sides
	return b
}

// Title returns a copy with the given title span.
func (b Block) Title(span text.Span) Block {
	b.title = &span
	return b
}

// BorderStyle returns a copy using s for the border cells.
func (b Block) BorderStyle(s style.Style) Block {
	b.borderStyle = s
	return b
}

// Style returns a copy using s as the base style for the whole area.
func (b Block) Style(s style.Style) Block {
	b.style = s
	return b
}

// Inner computes the content rectangle left inside the borders.
// A title claims the top row even without a top border.
func (b Block) Inner(area geom.Rect) geom.Rect {
	inner := area
	if b.borders.Has(BorderLeft) {
		inner.X++
		inner.Width--
	}
	if b.borders.Has(BorderTop) || b.title != nil {
		inner.Y++
		inner.Height--
	}
	if b.borders.Has(BorderRight) {
		inner.Width--
	}
	if b.borders.Has(BorderBottom) {
		inner.Height--
	}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Render draws the base style, borders, and title into area.
func (b Block) Render(area geom.Rect, buf *buffer.Buffer) {
	if area.Empty() {
		return
	}
	buf.SetStyle(area, b.style)

	set := func(x, y int, sym string) {
		if cell := buf.At(x, y); cell != nil {
			cell.SetSymbol(sym).ApplyStyle(b.borderStyle)
		}
	}

	if b.borders.Has(BorderTop) {
		for x := area.Left(); x < area.Right(); x++ {
			set(x, area.Top(), "─")
		}
	}
	if b.borders.Has(BorderBottom) {
		for x := area.Left(); x < area.Right(); x++ {
			set(x, area.Bottom()-1, "─")
		}
	}
	if b.borders.Has(BorderLeft) {
		for y := area.Top(); y < area.Bottom(); y++ {
			set(area.Left(), y, "│")
		}
	}
	if b.borders.Has(BorderRight) {
		for y := area.Top(); y < area.Bottom(); y++ {
			set(area.Right()-1, y, "│")
		}
	}
	// Bottom corners first: in a one-row area the top and bottom rows
	// coincide, and the top corners must win.
	if b.borders.Has(BorderBottom | BorderRight) {
		set(area.Right()-1, area.Bottom()-1, "┘")
	}
	if b.borders.Has(BorderBottom | BorderLeft) {
		set(area.Left(), area.Bottom()-1, "└")
	}
	if b.borders.Has(BorderTop | BorderRight) {
		set(area.Right()-1, area.Top(), "┐")
	}
	if b.borders.Has(BorderTop | BorderLeft) {
		set(area.Left(), area.Top(), "┌")
	}

	if b.title != nil {
		x := area.Left()
		maxWidth := area.Width
		if b.borders.Has(BorderLeft) {
			x++
			maxWidth--
		}
		if b.borders.Has(BorderRight) {
			maxWidth--
		}
		if maxWidth > 0 {
			buf.SetSpan(x, area.Top(), *b.title, maxWidth)
		}
	}
}
