package widget

import (
	"fmt"
	"math"

	"github.com/drake/cellview/buffer"
	"github.com/drake/cellview/geom"
	"github.com/drake/cellview/style"
	"github.com/drake/cellview/text"
)

// Compile-time check that Gauge implements Widget.
var _ Widget = Gauge{}

// Gauge is a horizontal progress bar with a centered label.
//
// The filled portion uses no special glyph: it writes plain spaces and
// swaps the gauge style's foreground and background over them, so the
// configured background reads as the visible fill. Unlike a
// conventional gauge it stays usable in a single-row area even when
// wrapped in a bordered Block.
//
//	g := widget.NewGauge().
//		Block(widget.NewBlock().Borders(widget.BorderAll).Title(text.NewSpan("Progress"))).
//		GaugeStyle(style.New().Foreground(style.ANSI(7)).Background(style.ANSI(0))).
//		Percent(20)
//	g.Render(area, buf)
type Gauge struct {
	block      *Block
	ratio      float64
	label      *text.Span
	style      style.Style
	gaugeStyle style.Style
}

// NewGauge creates a gauge at 0% with no block, label, or styling.
func NewGauge() Gauge {
	return Gauge{}
}

// Block returns a copy wrapped in the given block. The block is drawn
// first and its inner rectangle becomes the gauge's drawing area,
// except for single-row areas (see Render).
func (g Gauge) Block(b Block) Gauge {
	g.block = &b
	return g
}

// Percent returns a copy at p percent complete.
// p outside [0, 100] is a caller bug and panics.
func (g Gauge) Percent(p int) Gauge {
	if p < 0 || p > 100 {
		panic(fmt.Sprintf("widget: gauge percent %d out of range [0, 100]", p))
	}
	g.ratio = float64(p) / 100.0
	return g
}

// Ratio returns a copy at the given completion fraction.
// r outside [0.0, 1.0] is a caller bug and panics.
func (g Gauge) Ratio(r float64) Gauge {
	if !(r >= 0.0 && r <= 1.0) {
		panic(fmt.Sprintf("widget: gauge ratio %v out of range [0.0, 1.0]", r))
	}
	g.ratio = r
	return g
}

// Label returns a copy using span instead of the default "N%" label.
func (g Gauge) Label(span text.Span) Gauge {
	g.label = &span
	return g
}

// Style returns a copy using s as the base style for the whole area.
func (g Gauge) Style(s style.Style) Gauge {
	g.style = s
	return g
}

// GaugeStyle returns a copy using s for the filled region and label.
func (g Gauge) GaugeStyle(s style.Style) Gauge {
	g.gaugeStyle = s
	return g
}

// Render draws the gauge into area. The gauge value is consumed; its
// only effect is mutating buf.
func (g Gauge) Render(area geom.Rect, buf *buffer.Buffer) {
	buf.SetStyle(area, g.style)

	gaugeArea := area
	if g.block != nil {
		inner := g.block.Inner(area)
		// A bordered inner rect collapses to zero rows at height 1;
		// draw over the full area instead so the gauge stays visible.
		if area.Height == 1 {
			inner = area
		}
		g.block.Render(area, buf)
		gaugeArea = inner
	}

	buf.SetStyle(gaugeArea, g.gaugeStyle)
	if gaugeArea.Height < 1 || gaugeArea.Width < 1 {
		return
	}

	center := gaugeArea.Top() + gaugeArea.Height/2
	fillWidth := int(math.Round(float64(gaugeArea.Width) * g.ratio))
	end := gaugeArea.Left() + fillWidth

	var label text.Span
	if g.label != nil {
		label = *g.label
	} else {
		label = text.NewSpan(fmt.Sprintf("%d%%", int(math.Round(g.ratio*100))))
	}

	for y := gaugeArea.Top(); y < gaugeArea.Bottom(); y++ {
		for x := gaugeArea.Left(); x < end; x++ {
			if cell := buf.At(x, y); cell != nil {
				cell.SetSymbol(" ")
			}
		}

		if y == center {
			middle := gaugeArea.Left() + (gaugeArea.Width-label.Width())/2
			buf.SetSpan(middle, y, label, gaugeArea.Right()-middle)
		}

		// Swap fg/bg over the filled span. Runs after the label write
		// on purpose: the label's own style must not survive inside
		// the filled region, only its glyphs.
		for x := gaugeArea.Left(); x < end; x++ {
			if cell := buf.At(x, y); cell != nil {
				cell.SetFg(g.gaugeStyle.Bg).SetBg(g.gaugeStyle.Fg)
			}
		}
	}
}
