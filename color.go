package cpdraw

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/jakecoffman/cp/v2"
)

var (
	Black = cp.FColor{A: 1}
	White = cp.FColor{R: 1, G: 1, B: 1, A: 1}
	Red   = cp.FColor{R: 1, A: 1}
	Green = cp.FColor{G: 1, A: 1}
	Blue  = cp.FColor{B: 1, A: 1}

	// Colors for the primitives cp does not draw itself.
	AABBColor = cp.FColor{R: 0.9, G: 0.3, B: 0.9, A: 1}
	PairColor = cp.FColor{R: 0.3, G: 0.9, B: 0.9, A: 1}
)

// fillAlpha is the alpha used for the interior of solid shapes.
const fillAlpha = 0.5

// ToRGBA converts a cp color to a gg color.
func ToRGBA(c cp.FColor) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

func withAlpha(c cp.FColor, a float32) cp.FColor {
	c.A = a
	return c
}

func opaque(c cp.FColor) cp.FColor {
	return withAlpha(c, 1)
}

// ColorForShape picks a stable color for a shape from its hash id. Static
// bodies get a darker intensity than dynamic ones, sleeping bodies are dark
// grey, idle bodies light grey and sensors are nearly transparent.
func ColorForShape(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 1, B: 1, A: 0.1}
	}

	body := shape.Body()
	if body.IsSleeping() {
		return cp.FColor{R: 0.2, G: 0.2, B: 0.2, A: 1}
	}

	// about to fall asleep
	if space := shape.Space(); space != nil && body.IdleTime() > space.SleepTimeThreshold {
		return cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 1}
	}

	intensity := 0.75
	if body.GetType() == cp.BODY_STATIC {
		intensity = 0.15
	}
	return hashColor(uint32(shape.HashId()), intensity)
}

func hashColor(val uint32, intensity float64) cp.FColor {
	// Robert Jenkins' 32 bit integer hash
	val = (val + 0x7ed55d16) + (val << 12)
	val = (val ^ 0xc761c23c) ^ (val >> 19)
	val = (val + 0x165667b1) + (val << 5)
	val = (val + 0xd3a2646c) ^ (val << 9)
	val = (val + 0xfd7046c5) + (val << 3)
	val = (val ^ 0xb55a4f09) ^ (val >> 16)

	r := float64(val & 0xFF)
	g := float64((val >> 8) & 0xFF)
	b := float64((val >> 16) & 0xFF)

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	if min == max {
		return cp.FColor{R: float32(intensity), A: 1}
	}

	coef := intensity / (max - min)
	return cp.FColor{
		R: float32((r - min) * coef),
		G: float32((g - min) * coef),
		B: float32((b - min) * coef),
		A: 1,
	}
}
