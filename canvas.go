package cpdraw

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the retained drawing context a Renderer issues calls against.
// *gg.Context satisfies it.
type Canvas interface {
	ClearWithColor(col gg.RGBA)
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawCircle(x, y, r float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawRectangle(x, y, w, h float64)

	Fill() error
	FillPreserve() error
	Stroke() error

	Push()
	Pop()

	SetFont(face text.Face)
	DrawString(s string, x, y float64)
}

var _ Canvas = (*gg.Context)(nil)
