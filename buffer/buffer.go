// Package buffer provides the 2D cell grid that widgets render into.
//
// Every cell holds a symbol (one grapheme cluster), foreground and
// background colors, and text modifiers. All writes are clipped to the
// buffer bounds: out-of-range positions are silently ignored, since a
// too-small drawing area is a valid transient state (e.g. mid-resize),
// not an error.
package buffer

import (
	"github.com/drake/cellview/geom"
	"github.com/drake/cellview/style"
	"github.com/drake/cellview/text"
)

// Cell is one addressable unit of the buffer.
type Cell struct {
	Symbol string
	Fg     style.Color
	Bg     style.Color
	Mods   style.Modifier
}

// Blank is the cell every buffer position starts as.
var Blank = Cell{Symbol: " "}

// SetSymbol sets the cell's symbol and returns the cell for chaining.
func (c *Cell) SetSymbol(sym string) *Cell {
	c.Symbol = sym
	return c
}

// SetFg sets the cell's foreground color.
func (c *Cell) SetFg(col style.Color) *Cell {
	c.Fg = col
	return c
}

// SetBg sets the cell's background color.
func (c *Cell) SetBg(col style.Color) *Cell {
	c.Bg = col
	return c
}

// ApplyStyle patches the cell with s: set colors override, unset colors
// leave the cell as-is, modifiers accumulate. The symbol is untouched.
func (c *Cell) ApplyStyle(s style.Style) *Cell {
	if s.Fg.Set() {
		c.Fg = s.Fg
	}
	if s.Bg.Set() {
		c.Bg = s.Bg
	}
	c.Mods |= s.Mods
	return c
}

// Buffer is a rectangular grid of cells, row-major within Area.
type Buffer struct {
	Area  geom.Rect
	Cells []Cell
}

// New creates a blank buffer covering area.
func New(area geom.Rect) *Buffer {
	n := area.Area()
	if n < 0 {
		n = 0
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Blank
	}
	return &Buffer{Area: area, Cells: cells}
}

// Reset restores every cell to the blank state.
func (b *Buffer) Reset() {
	for i := range b.Cells {
		b.Cells[i] = Blank
	}
}

// At returns the cell at buffer coordinates (x, y), or nil when the
// position lies outside the buffer.
func (b *Buffer) At(x, y int) *Cell {
	if !b.Area.Contains(x, y) {
		return nil
	}
	i := (y-b.Area.Top())*b.Area.Width + (x - b.Area.Left())
	return &b.Cells[i]
}

// SetCell overwrites the cell at (x, y). Ignored when out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if cell := b.At(x, y); cell != nil {
		*cell = c
	}
}

// SetStyle patches every cell in area with s. Symbols are untouched.
// The area is clipped to the buffer bounds.
func (b *Buffer) SetStyle(area geom.Rect, s style.Style) {
	clipped := b.Area.Intersection(area)
	for y := clipped.Top(); y < clipped.Bottom(); y++ {
		for x := clipped.Left(); x < clipped.Right(); x++ {
			b.At(x, y).ApplyStyle(s)
		}
	}
}

// SetSpan writes span starting at (x, y), applying the span's style to
// every cell it touches. At most maxWidth cells of display width are
// drawn, counted from x even when x starts outside the buffer; the rest
// is clipped. Wide graphemes blank the continuation cells they cover.
// Returns the x position one past the last cell the span covered.
func (b *Buffer) SetSpan(x, y int, span text.Span, maxWidth int) int {
	remaining := maxWidth
	for _, g := range text.Graphemes(span.Content) {
		if g.Width > remaining {
			break
		}
		if cell := b.At(x, y); cell != nil {
			cell.SetSymbol(g.Symbol).ApplyStyle(span.Style)
		}
		for i := 1; i < g.Width; i++ {
			if cont := b.At(x+i, y); cont != nil {
				cont.SetSymbol(" ").ApplyStyle(span.Style)
			}
		}
		x += g.Width
		remaining -= g.Width
	}
	return x
}

// SetString writes content with the given style, clipped only by the
// buffer bounds.
func (b *Buffer) SetString(x, y int, content string, s style.Style) int {
	return b.SetSpan(x, y, text.Span{Content: content, Style: s}, b.Area.Right()-x)
}
