// Package screen turns a cell buffer into styled terminal output.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/cellview/buffer"
	"github.com/drake/cellview/style"
)

// Renderer converts buffers into ANSI-styled frames. Styles repeat
// heavily across cells, so the translation to lipgloss is cached.
type Renderer struct {
	cache *lru.Cache[style.Style, lipgloss.Style]
}

// NewRenderer creates a renderer with a warm style cache.
func NewRenderer() *Renderer {
	cache, _ := lru.New[style.Style, lipgloss.Style](256)
	return &Renderer{cache: cache}
}

// Frame renders the whole buffer as newline-joined styled rows.
// Runs of identically styled cells are emitted as a single styled
// segment to keep the output compact.
func (r *Renderer) Frame(buf *buffer.Buffer) string {
	var sb strings.Builder
	for y := buf.Area.Top(); y < buf.Area.Bottom(); y++ {
		if y > buf.Area.Top() {
			sb.WriteByte('\n')
		}
		r.row(buf, y, &sb)
	}
	return sb.String()
}

func (r *Renderer) row(buf *buffer.Buffer, y int, sb *strings.Builder) {
	var run strings.Builder
	var current style.Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if current == (style.Style{}) {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(r.styleFor(current).Render(run.String()))
		}
		run.Reset()
	}

	for x := buf.Area.Left(); x < buf.Area.Right(); x++ {
		cell := buf.At(x, y)
		s := style.Style{Fg: cell.Fg, Bg: cell.Bg, Mods: cell.Mods}
		if s != current {
			flush()
			current = s
		}
		run.WriteString(cell.Symbol)
	}
	flush()
}

func (r *Renderer) styleFor(s style.Style) lipgloss.Style {
	if ls, ok := r.cache.Get(s); ok {
		return ls
	}
	ls := lipgloss.NewStyle()
	if s.Fg.Set() {
		ls = ls.Foreground(lipgloss.Color(string(s.Fg)))
	}
	if s.Bg.Set() {
		ls = ls.Background(lipgloss.Color(string(s.Bg)))
	}
	if s.Mods.Has(style.ModBold) {
		ls = ls.Bold(true)
	}
	if s.Mods.Has(style.ModDim) {
		ls = ls.Faint(true)
	}
	if s.Mods.Has(style.ModItalic) {
		ls = ls.Italic(true)
	}
	if s.Mods.Has(style.ModUnderline) {
		ls = ls.Underline(true)
	}
	if s.Mods.Has(style.ModReversed) {
		ls = ls.Reverse(true)
	}
	if s.Mods.Has(style.ModCrossedOut) {
		ls = ls.Strikethrough(true)
	}
	r.cache.Add(s, ls)
	return ls
}
