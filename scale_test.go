package cpdraw

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp/v2"
)

func TestNewScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{100, 100},
		{0.5, 0.5},
		{0, DefaultPointsPerMeter},
		{-3, DefaultPointsPerMeter},
		{math.NaN(), DefaultPointsPerMeter},
		{math.Inf(1), DefaultPointsPerMeter},
	}
	for _, tt := range tests {
		if got := NewScale(tt.in).PointsPerMeter(); got != tt.want {
			t.Errorf("NewScale(%v).PointsPerMeter() = %v, want %v", tt.in, got, tt.want)
		}
	}

	var zero Scale
	if zero.PointsPerMeter() != DefaultPointsPerMeter {
		t.Errorf("zero Scale = %v, want default", zero.PointsPerMeter())
	}
}

func TestScale_RoundTrip(t *testing.T) {
	s := NewScale(40)
	if got := s.ToPhysics(80); got != 2 {
		t.Errorf("ToPhysics(80) = %v", got)
	}
	if got := s.FromPhysics(2); got != 80 {
		t.Errorf("FromPhysics(2) = %v", got)
	}
	if got := s.MetersPerPoint(); got != 1.0/40 {
		t.Errorf("MetersPerPoint() = %v", got)
	}

	v := cp.Vector{X: 120, Y: -40}
	if got := s.ToPhysicsVector(v); got != (cp.Vector{X: 3, Y: -1}) {
		t.Errorf("ToPhysicsVector(%v) = %v", v, got)
	}
	if got := s.FromPhysicsVector(s.ToPhysicsVector(v)); got != v {
		t.Errorf("vector round trip = %v, want %v", got, v)
	}

	bb := cp.BB{L: 0, B: 0, R: 1024, T: 768}
	want := cp.BB{L: 0, B: 0, R: 25.6, T: 19.2}
	if got := s.ToPhysicsBB(bb); got != want {
		t.Errorf("ToPhysicsBB(%v) = %v, want %v", bb, got, want)
	}
	if got := s.FromPhysicsBB(want); got != bb {
		t.Errorf("FromPhysicsBB(%v) = %v, want %v", want, got, bb)
	}
}

func TestScale_WindowBounds(t *testing.T) {
	tests := []struct {
		ppm  float64
		bb   cp.BB
		want cp.BB
	}{
		{50, cp.BB{R: 1024, T: 768}, cp.BB{R: 20.48, T: 15.36}},
		{40, cp.BB{R: 1024, T: 768}, cp.BB{R: 25.6, T: 19.2}},
		{30, cp.BB{R: 640, T: 480}, cp.BB{R: 640.0 / 30, T: 16}},
	}
	for _, tt := range tests {
		s := NewScale(tt.ppm)
		got := s.ToPhysicsBB(tt.bb)
		if got != tt.want {
			t.Errorf("NewScale(%v).ToPhysicsBB(%v) = %v, want %v", tt.ppm, tt.bb, got, tt.want)
		}
		if back := s.FromPhysicsBB(got); back != tt.bb {
			t.Errorf("NewScale(%v) round trip = %v, want %v", tt.ppm, back, tt.bb)
		}
		corner := cp.Vector{X: tt.bb.R, Y: tt.bb.T}
		if v := s.ToPhysicsVector(corner); v.X != got.R || v.Y != got.T {
			t.Errorf("ToPhysicsVector(%v) = %v, want it to match the box", corner, v)
		}
	}
}
