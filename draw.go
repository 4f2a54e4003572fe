package cpdraw

import (
	"github.com/jakecoffman/cp/v2"
)

// DrawOptions implements cp.Drawer on top of a Renderer. cp calls it for
// every shape, constraint and contact while walking a space.
type DrawOptions struct {
	r *Renderer
}

var _ cp.Drawer = (*DrawOptions)(nil)

func NewDrawOptions(r *Renderer) *DrawOptions {
	return &DrawOptions{r: r}
}

// Options returns the cp.Drawer view of the renderer, for callers that want
// to run cp.DrawSpace themselves.
func (r *Renderer) Options() *DrawOptions {
	return NewDrawOptions(r)
}

func (d *DrawOptions) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.r.solidCircle(pos, radius, cp.ForAngle(angle), outline, withAlpha(fill, fill.A*fillAlpha))
}

func (d *DrawOptions) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.r.DrawSegment(a, b, fill)
}

func (d *DrawOptions) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.r.fatSegment(a, b, radius, outline, fill)
}

func (d *DrawOptions) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count < len(verts) {
		verts = verts[:count]
	}
	d.r.solidPolygon(verts, radius, outline, withAlpha(fill, fill.A*fillAlpha))
}

func (d *DrawOptions) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.r.DrawPoint(pos, size, fill)
}

func (d *DrawOptions) Flags() uint {
	return uint(d.r.flags & (DrawShapes | DrawConstraints | DrawCollisionPoints))
}

func (d *DrawOptions) OutlineColor() cp.FColor {
	return d.r.outline
}

func (d *DrawOptions) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return d.r.shapeColor(shape, data)
}

func (d *DrawOptions) ConstraintColor() cp.FColor {
	return d.r.constraint
}

func (d *DrawOptions) CollisionPointColor() cp.FColor {
	return d.r.collisionPoint
}

func (d *DrawOptions) Data() interface{} {
	return d.r.data
}

// DrawSpace draws one frame of debug output for space. Shapes and
// constraints go through cp's own DrawShape and DrawConstraint; contacts,
// bounding boxes, colliding pairs and center of mass frames are drawn here
// according to the renderer's flags.
func (r *Renderer) DrawSpace(space *cp.Space) {
	r.canvas.Push()
	defer r.canvas.Pop()

	opts := r.Options()

	if r.flags&DrawShapes != 0 {
		space.EachShape(func(shape *cp.Shape) {
			cp.DrawShape(shape, opts)
		})
	}

	if r.flags&DrawConstraints != 0 {
		space.EachConstraint(func(constraint *cp.Constraint) {
			cp.DrawConstraint(constraint, opts)
		})
	}

	if r.flags&DrawAABB != 0 {
		space.EachShape(func(shape *cp.Shape) {
			r.DrawAABB(shape.BB(), AABBColor)
		})
	}

	if r.flags&(DrawPairs|DrawCollisionPoints) != 0 {
		r.drawArbiters(space)
	}

	if r.flags&DrawCenterOfMass != 0 {
		space.EachBody(func(body *cp.Body) {
			if body.GetType() == cp.BODY_STATIC {
				return
			}
			r.DrawTransform(body.LocalToWorld(body.CenterOfGravity()), body.Angle())
		})
	}
}

// drawArbiters visits every arbiter once. Each one is threaded on both of
// its bodies.
func (r *Renderer) drawArbiters(space *cp.Space) {
	seen := map[*cp.Arbiter]struct{}{}
	tick := r.scale.ToPhysics(2)

	space.EachBody(func(body *cp.Body) {
		body.EachArbiter(func(arb *cp.Arbiter) {
			if _, ok := seen[arb]; ok {
				return
			}
			seen[arb] = struct{}{}

			if r.flags&DrawPairs != 0 {
				a, b := arb.Shapes()
				r.DrawSegment(bbCenter(a.BB()), bbCenter(b.BB()), PairColor)
			}
			if r.flags&DrawCollisionPoints != 0 {
				set := arb.ContactPointSet()
				for i := 0; i < set.Count; i++ {
					p1 := set.Points[i].PointA.Add(set.Normal.Mult(-tick))
					p2 := set.Points[i].PointB.Add(set.Normal.Mult(tick))
					r.DrawSegment(p1, p2, r.collisionPoint)
				}
			}
		})
	})
}

func bbCenter(bb cp.BB) cp.Vector {
	return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
}
