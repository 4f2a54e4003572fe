package cpdraw

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// DefaultPointsPerMeter is used when a Scale is built with a non-positive
// value, and by the zero Scale.
const DefaultPointsPerMeter = 50.0

// Scale maps between physics meters and screen points.
type Scale struct {
	pointsPerMeter float64
}

func NewScale(pointsPerMeter float64) Scale {
	if pointsPerMeter <= 0 || math.IsNaN(pointsPerMeter) || math.IsInf(pointsPerMeter, 0) {
		pointsPerMeter = DefaultPointsPerMeter
	}
	return Scale{pointsPerMeter: pointsPerMeter}
}

func (s Scale) PointsPerMeter() float64 {
	if s.pointsPerMeter <= 0 {
		return DefaultPointsPerMeter
	}
	return s.pointsPerMeter
}

func (s Scale) MetersPerPoint() float64 {
	return 1 / s.PointsPerMeter()
}

// ToPhysics converts a length in points to meters.
func (s Scale) ToPhysics(points float64) float64 {
	return points / s.PointsPerMeter()
}

// FromPhysics converts a length in meters to points.
func (s Scale) FromPhysics(meters float64) float64 {
	return meters * s.PointsPerMeter()
}

func (s Scale) ToPhysicsVector(v cp.Vector) cp.Vector {
	k := s.PointsPerMeter()
	return cp.Vector{X: v.X / k, Y: v.Y / k}
}

func (s Scale) FromPhysicsVector(v cp.Vector) cp.Vector {
	return v.Mult(s.PointsPerMeter())
}

func (s Scale) ToPhysicsBB(bb cp.BB) cp.BB {
	k := s.PointsPerMeter()
	return cp.BB{L: bb.L / k, B: bb.B / k, R: bb.R / k, T: bb.T / k}
}

func (s Scale) FromPhysicsBB(bb cp.BB) cp.BB {
	k := s.PointsPerMeter()
	return cp.BB{L: bb.L * k, B: bb.B * k, R: bb.R * k, T: bb.T * k}
}
