package buffer

import (
	"testing"

	"github.com/drake/cellview/geom"
	"github.com/drake/cellview/style"
	"github.com/drake/cellview/text"
)

func row(b *Buffer, y int) string {
	s := ""
	for x := b.Area.Left(); x < b.Area.Right(); x++ {
		s += b.At(x, y).Symbol
	}
	return s
}

func TestNewIsBlank(t *testing.T) {
	b := New(geom.NewRect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := *b.At(x, y); got != Blank {
				t.Errorf("cell (%d,%d) not blank: %+v", x, y, got)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	b := New(geom.NewRect(0, 0, 3, 2))
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		if b.At(p[0], p[1]) != nil {
			t.Errorf("At(%d,%d) should be nil", p[0], p[1])
		}
	}
	// SetCell out of range is a no-op, not a failure.
	b.SetCell(99, 99, Cell{Symbol: "x"})
}

func TestAtWithOffsetArea(t *testing.T) {
	b := New(geom.NewRect(2, 3, 4, 2))
	b.SetCell(2, 3, Cell{Symbol: "a"})
	b.SetCell(5, 4, Cell{Symbol: "z"})
	if got := b.At(2, 3).Symbol; got != "a" {
		t.Errorf("origin cell: %q", got)
	}
	if got := b.At(5, 4).Symbol; got != "z" {
		t.Errorf("far corner cell: %q", got)
	}
	if b.At(1, 3) != nil || b.At(6, 4) != nil {
		t.Error("cells outside the offset area should be nil")
	}
}

func TestSetStylePatches(t *testing.T) {
	b := New(geom.NewRect(0, 0, 2, 1))
	b.At(0, 0).SetFg(style.ANSI(1)).SetSymbol("x")

	// Style with only a background set: fg and symbol survive.
	b.SetStyle(b.Area, style.New().Background(style.ANSI(4)))
	cell := b.At(0, 0)
	if cell.Fg != style.ANSI(1) {
		t.Errorf("fg overwritten: %q", cell.Fg)
	}
	if cell.Bg != style.ANSI(4) {
		t.Errorf("bg not applied: %q", cell.Bg)
	}
	if cell.Symbol != "x" {
		t.Errorf("symbol touched: %q", cell.Symbol)
	}
}

func TestSetStyleClipped(t *testing.T) {
	b := New(geom.NewRect(0, 0, 2, 2))
	// An area hanging off the buffer only affects the overlap.
	b.SetStyle(geom.NewRect(1, 1, 10, 10), style.New().Foreground(style.ANSI(2)))
	if b.At(0, 0).Fg.Set() {
		t.Error("cell outside styled area was touched")
	}
	if got := b.At(1, 1).Fg; got != style.ANSI(2) {
		t.Errorf("cell inside styled area: %q", got)
	}
}

func TestSetSpanAppliesStyle(t *testing.T) {
	s := style.New().Foreground(style.ANSI(3))
	b := New(geom.NewRect(0, 0, 8, 1))
	next := b.SetSpan(1, 0, text.Styled("ab", s), 8)
	if next != 3 {
		t.Errorf("next x: %d", next)
	}
	if got := row(b, 0); got != " ab     " {
		t.Errorf("row: %q", got)
	}
	if got := b.At(1, 0).Fg; got != s.Fg {
		t.Errorf("span fg: %q", got)
	}
	if b.At(0, 0).Fg.Set() {
		t.Error("untouched cell gained a color")
	}
}

func TestSetSpanMaxWidthClamp(t *testing.T) {
	b := New(geom.NewRect(0, 0, 8, 1))
	b.SetSpan(0, 0, text.NewSpan("hello"), 3)
	if got := row(b, 0); got != "hel     " {
		t.Errorf("row: %q", got)
	}
}

func TestSetSpanNegativeStartClips(t *testing.T) {
	b := New(geom.NewRect(0, 0, 4, 1))
	// Cells left of the buffer are skipped but still consume width.
	b.SetSpan(-2, 0, text.NewSpan("hello"), 5)
	if got := row(b, 0); got != "llo " {
		t.Errorf("row: %q", got)
	}
}

func TestSetSpanWideRunes(t *testing.T) {
	b := New(geom.NewRect(0, 0, 6, 1))
	// Each CJK grapheme occupies two cells; a budget of 3 fits one.
	next := b.SetSpan(0, 0, text.NewSpan("日本"), 3)
	if next != 2 {
		t.Errorf("next x: %d", next)
	}
	if got := b.At(0, 0).Symbol; got != "日" {
		t.Errorf("wide symbol: %q", got)
	}
	if got := b.At(1, 0).Symbol; got != " " {
		t.Errorf("continuation cell: %q", got)
	}
	if got := b.At(2, 0).Symbol; got != " " {
		t.Errorf("cell past budget: %q", got)
	}
}

func TestReset(t *testing.T) {
	b := New(geom.NewRect(0, 0, 2, 1))
	b.SetString(0, 0, "xy", style.New().Foreground(style.ANSI(9)))
	b.Reset()
	for x := 0; x < 2; x++ {
		if got := *b.At(x, 0); got != Blank {
			t.Errorf("cell %d not blank after reset: %+v", x, got)
		}
	}
}
