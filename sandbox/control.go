package sandbox

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/jakecoffman/cpdraw"
)

const (
	// grabRadius is the slack, in points, given to a click so small shapes
	// are easy to pick.
	grabRadius = 5.0

	mouseMaxForce  = 50000.0
	mouseLerp      = 0.25
	mouseErrorBase = 1.0 - 0.15
)

type pointer struct {
	body   *cp.Body
	joint  *cp.Constraint
	grab   *cp.Body
	target cp.Vector
}

// Control drags bodies with pivot joints attached to one kinematic body per
// pointer. Pointer positions are in meters.
type Control struct {
	sandbox        *Sandbox
	metersPerPoint float64
	pointers       map[int]*pointer
}

// NewControl hooks a Control into s. metersPerPoint scales the grab radius.
func NewControl(s *Sandbox, metersPerPoint float64) *Control {
	c := &Control{
		sandbox:        s,
		metersPerPoint: metersPerPoint,
		pointers:       map[int]*pointer{},
	}
	s.OnStep(c.tick)
	s.OnDestroy(c.release)
	return c
}

// Down grabs the body under p for pointer id. It reports whether a body was
// grabbed.
func (c *Control) Down(id int, p cp.Vector) bool {
	c.Up(id)

	space := c.sandbox.space
	info := space.PointQueryNearest(p, grabRadius*c.metersPerPoint, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return false
	}
	body := info.Shape.Body()
	if body.GetType() != cp.BODY_DYNAMIC || body.Mass() >= cp.INFINITY {
		return false
	}

	nearest := p
	if info.Distance > 0 {
		nearest = info.Point
	}

	kinematic := cp.NewKinematicBody()
	kinematic.SetPosition(p)

	joint := cp.NewPivotJoint2(kinematic, body, cp.Vector{}, body.WorldToLocal(nearest))
	joint.SetMaxForce(mouseMaxForce * body.Mass())
	joint.SetErrorBias(math.Pow(mouseErrorBase, 60.0))
	space.AddConstraint(joint)

	c.pointers[id] = &pointer{body: kinematic, joint: joint, grab: body, target: p}
	cpdraw.Logger().Debug("sandbox: grab", slog.Int("pointer", id), slog.Any("at", p))
	return true
}

// Drag moves the target of pointer id. The grabbed body follows on the
// next steps.
func (c *Control) Drag(id int, p cp.Vector) {
	if ptr, ok := c.pointers[id]; ok {
		ptr.target = p
	}
}

// Up releases whatever pointer id holds.
func (c *Control) Up(id int) {
	ptr, ok := c.pointers[id]
	if !ok {
		return
	}
	c.sandbox.space.RemoveConstraint(ptr.joint)
	delete(c.pointers, id)
}

// Holding returns the body grabbed by pointer id, or nil.
func (c *Control) Holding(id int) *cp.Body {
	if ptr, ok := c.pointers[id]; ok {
		return ptr.grab
	}
	return nil
}

func (c *Control) Active() int { return len(c.pointers) }

func (c *Control) tick(dt float64) {
	for _, ptr := range c.pointers {
		pos := ptr.body.Position()
		next := pos.Lerp(ptr.target, mouseLerp)
		ptr.body.SetVelocityVector(next.Sub(pos).Mult(1 / dt))
		ptr.body.SetPosition(next)
	}
}

// release drops pointers holding body before the sandbox removes its
// constraints.
func (c *Control) release(body *cp.Body) {
	for id, ptr := range c.pointers {
		if ptr.grab == body {
			c.Up(id)
		}
	}
}
