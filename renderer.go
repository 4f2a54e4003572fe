package cpdraw

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/jakecoffman/cp/v2"
)

// axisScale is the length in meters of the axes drawn by DrawTransform.
const axisScale = 0.4

// Renderer converts physics primitives into calls on a Canvas. Positions
// passed to the Draw methods are in meters and are converted to points
// with the renderer's Scale; DrawString takes screen points.
type Renderer struct {
	canvas Canvas
	scale  Scale
	flags  Flags
	face   text.Face

	outline        cp.FColor
	constraint     cp.FColor
	collisionPoint cp.FColor
	shapeColor     func(*cp.Shape, interface{}) cp.FColor
	data           interface{}

	err error
}

type Option func(*Renderer)

func WithScale(s Scale) Option {
	return func(r *Renderer) { r.scale = s }
}

func WithFlags(f Flags) Option {
	return func(r *Renderer) { r.flags = f }
}

// WithFace sets the face used by DrawString. Without it the Go Regular
// font at DefaultFontSize is loaded on first use.
func WithFace(face text.Face) Option {
	return func(r *Renderer) { r.face = face }
}

// WithColors sets the outline, constraint and collision point colors cp
// asks for while drawing a space.
func WithColors(outline, constraint, collisionPoint cp.FColor) Option {
	return func(r *Renderer) {
		r.outline = outline
		r.constraint = constraint
		r.collisionPoint = collisionPoint
	}
}

// WithShapeColor replaces ColorForShape.
func WithShapeColor(f func(*cp.Shape, interface{}) cp.FColor) Option {
	return func(r *Renderer) { r.shapeColor = f }
}

// WithData sets the value cp hands back to every draw callback.
func WithData(data interface{}) Option {
	return func(r *Renderer) { r.data = data }
}

func NewRenderer(c Canvas, opts ...Option) *Renderer {
	r := &Renderer{
		canvas:         c,
		scale:          NewScale(DefaultPointsPerMeter),
		flags:          DefaultFlags,
		outline:        cp.FColor{R: 200.0 / 255.0, G: 210.0 / 255.0, B: 230.0 / 255.0, A: 1},
		constraint:     cp.FColor{R: 0, G: 0.75, B: 0, A: 1},
		collisionPoint: cp.FColor{R: 1, G: 0, B: 0, A: 1},
		shapeColor:     ColorForShape,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Canvas() Canvas { return r.canvas }

func (r *Renderer) Scale() Scale { return r.scale }

func (r *Renderer) Flags() Flags { return r.flags }

func (r *Renderer) SetFlags(f Flags) { r.flags = f }

func (r *Renderer) AppendFlags(f Flags) { r.flags |= f }

func (r *Renderer) ClearFlags(f Flags) { r.flags &^= f }

// Err returns the first canvas error seen since the last Flush.
func (r *Renderer) Err() error { return r.err }

// Flush returns the first canvas error seen since the last Flush and
// resets it. Call it once per frame.
func (r *Renderer) Flush() error {
	err := r.err
	r.err = nil
	return err
}

func (r *Renderer) check(err error) {
	if err == nil || r.err != nil {
		return
	}
	Logger().Debug("cpdraw: canvas error", slog.Any("err", err))
	r.err = err
}

func (r *Renderer) setColor(c cp.FColor) {
	r.canvas.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

func (r *Renderer) point(v cp.Vector) (float64, float64) {
	k := r.scale.PointsPerMeter()
	return v.X * k, v.Y * k
}

func (r *Renderer) path(verts []cp.Vector) {
	x, y := r.point(verts[0])
	r.canvas.MoveTo(x, y)
	for _, v := range verts[1:] {
		x, y = r.point(v)
		r.canvas.LineTo(x, y)
	}
	r.canvas.ClosePath()
}

// Clear fills the whole canvas with c.
func (r *Renderer) Clear(c cp.FColor) {
	r.canvas.ClearWithColor(ToRGBA(c))
}

// DrawPolygon strokes the closed outline through verts.
func (r *Renderer) DrawPolygon(verts []cp.Vector, c cp.FColor) {
	if len(verts) == 0 {
		return
	}
	r.path(verts)
	r.setColor(opaque(c))
	r.check(r.canvas.Stroke())
}

// DrawSolidPolygon fills the polygon with c at half alpha and outlines it
// in the same translucent color.
func (r *Renderer) DrawSolidPolygon(verts []cp.Vector, c cp.FColor) {
	half := withAlpha(c, fillAlpha)
	r.solidPolygon(verts, 0, half, half)
}

func (r *Renderer) solidPolygon(verts []cp.Vector, radius float64, outline, fill cp.FColor) {
	if len(verts) == 0 {
		return
	}
	r.path(verts)
	r.setColor(fill)
	if radius > 0 {
		// rounded polygons grow by their radius on every side
		r.canvas.SetLineWidth(2 * r.scale.FromPhysics(radius))
		r.check(r.canvas.FillPreserve())
		r.check(r.canvas.Stroke())
		r.path(verts)
	} else {
		r.check(r.canvas.FillPreserve())
	}
	r.canvas.SetLineWidth(1)
	r.setColor(outline)
	r.check(r.canvas.Stroke())
}

// DrawCircle strokes a circle outline.
func (r *Renderer) DrawCircle(center cp.Vector, radius float64, c cp.FColor) {
	x, y := r.point(center)
	r.canvas.DrawCircle(x, y, r.scale.FromPhysics(radius))
	r.setColor(opaque(c))
	r.check(r.canvas.Stroke())
}

// DrawSolidCircle fills a circle with c at half alpha, outlines it in
// opaque c and draws a radius along axis to show rotation.
func (r *Renderer) DrawSolidCircle(center cp.Vector, radius float64, axis cp.Vector, c cp.FColor) {
	r.solidCircle(center, radius, axis, opaque(c), withAlpha(c, fillAlpha))
}

func (r *Renderer) solidCircle(center cp.Vector, radius float64, axis cp.Vector, outline, fill cp.FColor) {
	x, y := r.point(center)
	pr := r.scale.FromPhysics(radius)

	r.canvas.DrawCircle(x, y, pr)
	r.setColor(fill)
	r.check(r.canvas.FillPreserve())
	r.setColor(outline)
	r.check(r.canvas.Stroke())

	ex, ey := r.point(center.Add(axis.Mult(radius)))
	r.canvas.DrawLine(x, y, ex, ey)
	r.check(r.canvas.Stroke())
}

// DrawSegment draws a one point wide line from p1 to p2.
func (r *Renderer) DrawSegment(p1, p2 cp.Vector, c cp.FColor) {
	x1, y1 := r.point(p1)
	x2, y2 := r.point(p2)
	r.canvas.DrawLine(x1, y1, x2, y2)
	r.setColor(opaque(c))
	r.check(r.canvas.Stroke())
}

func (r *Renderer) fatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor) {
	w := 2 * r.scale.FromPhysics(radius)
	if w <= 1 {
		r.DrawSegment(a, b, fill)
		return
	}
	x1, y1 := r.point(a)
	x2, y2 := r.point(b)

	r.canvas.SetLineCap(gg.LineCapRound)
	r.canvas.SetLineWidth(w + 2)
	r.canvas.DrawLine(x1, y1, x2, y2)
	r.setColor(outline)
	r.check(r.canvas.Stroke())

	r.canvas.SetLineWidth(w)
	r.canvas.DrawLine(x1, y1, x2, y2)
	r.setColor(fill)
	r.check(r.canvas.Stroke())

	r.canvas.SetLineCap(gg.LineCapButt)
	r.canvas.SetLineWidth(1)
}

// DrawTransform draws the x axis (red) and y axis (green) of a frame at
// position p rotated by angle radians.
func (r *Renderer) DrawTransform(p cp.Vector, angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	x1, y1 := r.point(p)

	x2, y2 := r.point(p.Add(cp.Vector{X: cos, Y: sin}.Mult(axisScale)))
	r.canvas.DrawLine(x1, y1, x2, y2)
	r.setColor(Red)
	r.check(r.canvas.Stroke())

	x2, y2 = r.point(p.Add(cp.Vector{X: -sin, Y: cos}.Mult(axisScale)))
	r.canvas.DrawLine(x1, y1, x2, y2)
	r.setColor(Green)
	r.check(r.canvas.Stroke())
}

// DrawPoint draws a filled disc of diameter size, measured in points.
func (r *Renderer) DrawPoint(p cp.Vector, size float64, c cp.FColor) {
	x, y := r.point(p)
	r.canvas.SetLineWidth(size)
	r.canvas.DrawCircle(x, y, size*0.5)
	r.setColor(opaque(c))
	r.check(r.canvas.Fill())
	r.canvas.SetLineWidth(1)
}

// DrawString draws white text with its baseline at screen point (x, y).
func (r *Renderer) DrawString(x, y float64, s string) {
	if r.face == nil {
		face, err := DefaultFace(DefaultFontSize)
		if err != nil {
			r.check(err)
			return
		}
		r.face = face
	}
	r.canvas.SetFont(r.face)
	r.setColor(White)
	r.canvas.DrawString(s, x, y)
}

// DrawAABB strokes the rectangle spanned by bb.
func (r *Renderer) DrawAABB(bb cp.BB, c cp.FColor) {
	x1, y1 := r.point(cp.Vector{X: math.Min(bb.L, bb.R), Y: math.Min(bb.B, bb.T)})
	x2, y2 := r.point(cp.Vector{X: math.Max(bb.L, bb.R), Y: math.Max(bb.B, bb.T)})
	r.canvas.DrawRectangle(x1, y1, x2-x1, y2-y1)
	r.setColor(opaque(c))
	r.check(r.canvas.Stroke())
}
