package widget

import (
	"github.com/drake/cellview/buffer"
	"github.com/drake/cellview/geom"
)

// Widget is the interface for anything that can draw itself into a
// region of a cell buffer. Render mutates buf and nothing else; the
// widget value is consumed by the call.
type Widget interface {
	Render(area geom.Rect, buf *buffer.Buffer)
}
