// Package sandbox wraps a cp.Space with the handful of helpers the samples
// need: a fixed time step, a static boundary, body factories and pointer
// dragging.
package sandbox

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/jakecoffman/cpdraw"
)

const (
	DefaultTimeStep   = 1.0 / 60.0
	DefaultIterations = 10

	// maxFrameTime bounds how much wall time Advance will simulate at once
	// so a stall does not turn into a burst of steps.
	maxFrameTime = 0.2

	defaultDensity  = 1.0
	defaultFriction = 0.3
)

// DefaultGravity points down the screen: physics y grows downward like
// screen coordinates.
var DefaultGravity = cp.Vector{X: 0, Y: 10}

// Sandbox owns a space and the bodies created through it.
type Sandbox struct {
	space       *cp.Space
	timeStep    float64
	accumulator float64

	bodies    map[*cp.Body]struct{}
	boundary  []*cp.Shape
	onStep    []func(dt float64)
	onDestroy []func(body *cp.Body)
}

type Option func(*Sandbox)

func WithGravity(g cp.Vector) Option {
	return func(s *Sandbox) { s.space.SetGravity(g) }
}

func WithTimeStep(dt float64) Option {
	return func(s *Sandbox) {
		if dt > 0 {
			s.timeStep = dt
		}
	}
}

func WithIterations(n uint) Option {
	return func(s *Sandbox) {
		if n > 0 {
			s.space.Iterations = n
		}
	}
}

func New(opts ...Option) *Sandbox {
	space := cp.NewSpace()
	space.Iterations = DefaultIterations
	space.SetGravity(DefaultGravity)

	s := &Sandbox{
		space:    space,
		timeStep: DefaultTimeStep,
		bodies:   map[*cp.Body]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sandbox) Space() *cp.Space { return s.space }

func (s *Sandbox) TimeStep() float64 { return s.timeStep }

// OnStep registers a hook run before every fixed step with the step size.
func (s *Sandbox) OnStep(f func(dt float64)) {
	s.onStep = append(s.onStep, f)
}

// OnDestroy registers a hook run before a body is removed from the space.
func (s *Sandbox) OnDestroy(f func(body *cp.Body)) {
	s.onDestroy = append(s.onDestroy, f)
}

// Step advances the simulation by one fixed time step.
func (s *Sandbox) Step() {
	for _, f := range s.onStep {
		f(s.timeStep)
	}
	s.space.Step(s.timeStep)
}

// Advance adds dt seconds of wall time and runs as many fixed steps as fit.
// It returns the number of steps taken.
func (s *Sandbox) Advance(dt float64) int {
	if dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	steps := 0
	for s.accumulator += dt; s.accumulator >= s.timeStep; s.accumulator -= s.timeStep {
		s.Step()
		steps++
	}
	return steps
}

// CreateBoundaryRect surrounds bb with four static segments, replacing any
// previous boundary.
func (s *Sandbox) CreateBoundaryRect(bb cp.BB) []*cp.Shape {
	for _, shape := range s.boundary {
		s.space.RemoveShape(shape)
	}
	s.boundary = s.boundary[:0]

	corners := []cp.Vector{
		{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T},
	}
	static := s.space.StaticBody
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		seg := s.space.AddShape(cp.NewSegment(static, a, b, 0))
		seg.SetElasticity(1)
		seg.SetFriction(1)
		s.boundary = append(s.boundary, seg)
	}
	cpdraw.Logger().Debug("sandbox: boundary", slog.Any("bb", bb))
	return s.boundary
}

// CreateCircle adds a dynamic circle of unit density centered at pos. It
// returns nil when radius is not positive.
func (s *Sandbox) CreateCircle(pos cp.Vector, radius float64) *cp.Body {
	if !positive(radius) {
		cpdraw.Logger().Debug("sandbox: bad circle", slog.Float64("radius", radius))
		return nil
	}
	mass := defaultDensity * math.Pi * radius * radius
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(pos)
	s.space.AddBody(body)

	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(defaultFriction)

	s.bodies[body] = struct{}{}
	return body
}

// CreateBox adds a dynamic box of unit density centered at pos. It returns
// nil unless both sides are positive.
func (s *Sandbox) CreateBox(pos, size cp.Vector) *cp.Body {
	if !positive(size.X) || !positive(size.Y) {
		cpdraw.Logger().Debug("sandbox: bad box", slog.Any("size", size))
		return nil
	}
	mass := defaultDensity * size.X * size.Y
	body := cp.NewBody(mass, cp.MomentForBox(mass, size.X, size.Y))
	body.SetPosition(pos)
	s.space.AddBody(body)

	shape := s.space.AddShape(cp.NewBox(body, size.X, size.Y, 0))
	shape.SetFriction(defaultFriction)

	s.bodies[body] = struct{}{}
	return body
}

// positive rejects zero, negative, NaN and infinite lengths, which would
// give a body zero or undefined mass.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// DestroyBody removes a body created by this sandbox together with its
// shapes and constraints. It reports whether the body was known.
func (s *Sandbox) DestroyBody(body *cp.Body) bool {
	if _, ok := s.bodies[body]; !ok {
		return false
	}
	for _, f := range s.onDestroy {
		f(body)
	}

	var constraints []*cp.Constraint
	body.EachConstraint(func(c *cp.Constraint) {
		constraints = append(constraints, c)
	})
	for _, c := range constraints {
		s.space.RemoveConstraint(c)
	}

	var shapes []*cp.Shape
	body.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})
	for _, shape := range shapes {
		s.space.RemoveShape(shape)
	}

	s.space.RemoveBody(body)
	delete(s.bodies, body)
	return true
}

// Clear destroys every body created by this sandbox. The boundary stays.
func (s *Sandbox) Clear() {
	n := len(s.bodies)
	for body := range s.bodies {
		s.DestroyBody(body)
	}
	cpdraw.Logger().Debug("sandbox: cleared", slog.Int("bodies", n))
}

func (s *Sandbox) BodyCount() int { return len(s.bodies) }

// Draw renders the space through the debug renderer.
func (s *Sandbox) Draw(r *cpdraw.Renderer) {
	r.DrawSpace(s.space)
}
