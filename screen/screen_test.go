package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/drake/cellview/buffer"
	"github.com/drake/cellview/geom"
	"github.com/drake/cellview/style"
)

// Tests run without a TTY, where lipgloss would strip all styling.
func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func TestFrameUnstyledBuffer(t *testing.T) {
	b := buffer.New(geom.NewRect(0, 0, 3, 2))
	b.SetString(0, 0, "abc", style.New())
	b.SetString(0, 1, "def", style.New())

	got := NewRenderer().Frame(b)
	if got != "abc\ndef" {
		t.Errorf("frame: %q", got)
	}
}

func TestFrameStyledRun(t *testing.T) {
	b := buffer.New(geom.NewRect(0, 0, 4, 1))
	b.SetString(1, 0, "xy", style.New().AddModifier(style.ModBold))

	got := NewRenderer().Frame(b)
	// The styled run is wrapped in escape codes; the plain cells are not.
	if !strings.HasPrefix(got, " ") || !strings.HasSuffix(got, " ") {
		t.Errorf("plain cells should stay unstyled: %q", got)
	}
	if !strings.Contains(got, "xy") {
		t.Errorf("run content missing: %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("styled run has no escape codes: %q", got)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	r := NewRenderer()
	s := style.New().Foreground(style.ANSI(5))
	first := r.styleFor(s)
	second := r.styleFor(s)
	if first.Render("x") != second.Render("x") {
		t.Error("cached style renders differently")
	}
	if r.cache.Len() != 1 {
		t.Errorf("cache size: %d", r.cache.Len())
	}
}
