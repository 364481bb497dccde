package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Pol is a polar coordinate. Theta is in radians.
type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}

// Bearing returns the angle in radians of target seen from origin, measured
// clockwise from +Y. The result is in [-pi, pi].
func Bearing(origin, target r2.Vec) float64 {
	d := r2.Sub(origin, target)
	return math.Atan2(-d.X, -d.Y)
}
