package text

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/drake/cellview/style"
)

// Span is a run of text rendered with a single style.
// It owns its content; there is no shared or borrowed state.
type Span struct {
	Content string
	Style   style.Style
}

// NewSpan creates an unstyled span.
func NewSpan(content string) Span {
	return Span{Content: content}
}

// Styled creates a span with the given style.
func Styled(content string, s style.Style) Span {
	return Span{Content: content, Style: s}
}

// Width returns the display width of the span in cells.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Grapheme is one user-perceived character and its display width.
type Grapheme struct {
	Symbol string
	Width  int
}

// Graphemes splits a string into grapheme clusters with cell widths.
// Zero-width clusters are dropped since they occupy no cell.
func Graphemes(s string) []Grapheme {
	var out []Grapheme
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		out = append(out, Grapheme{Symbol: cluster, Width: w})
	}
	return out
}
