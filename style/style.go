package style

import "strconv"

// Color identifies a terminal color as a lipgloss-compatible string:
// an ANSI-256 index ("203") or a hex value ("#ff5f5f").
// The zero value is the unset/reset sentinel: a cell painted with an
// unset color renders in the terminal's default.
type Color string

// ColorReset is the explicit unset/reset sentinel.
const ColorReset Color = ""

// ANSI returns the color for an ANSI-256 palette index.
func ANSI(n int) Color { return Color(strconv.Itoa(n)) }

// Hex returns a 24-bit color from a "#rrggbb" string.
func Hex(s string) Color { return Color(s) }

// Set reports whether the color holds a concrete value.
func (c Color) Set() bool { return c != ColorReset }

// Modifier is a bitmask of text attributes.
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderline
	ModReversed
	ModCrossedOut
)

// Has reports whether all bits of m are present.
func (mod Modifier) Has(m Modifier) bool { return mod&m == m }

// Style is a foreground/background color pair plus modifiers.
// It is a comparable value type; the zero value styles nothing.
type Style struct {
	Fg   Color
	Bg   Color
	Mods Modifier
}

// New returns the empty style.
func New() Style { return Style{} }

// Foreground returns a copy with the foreground set.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background set.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// AddModifier returns a copy with the given modifier bits added.
func (s Style) AddModifier(m Modifier) Style {
	s.Mods |= m
	return s
}
