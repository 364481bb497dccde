package must

import (
	"github.com/soypat/mathutil/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// PolarToCartesian returns the point at radius and angle (degrees,
// counter-clockwise from +X) around offset. Useful for laying out
// elements around a circle.
func PolarToCartesian(radius, angle float64, offset r2.Vec) r2.Vec {
	if !(radius >= 0) {
		panic("radius < 0")
	}
	p := d2.Pol{R: radius, Theta: DtoR(angle)}.PolarToCartesian()
	return r2.Add(p, offset)
}

// AngleFromPoints returns the bearing in degrees of target as seen from origin,
// measured clockwise from the +Y axis. The result is in [0, 360).
func AngleFromPoints(origin, target r2.Vec) float64 {
	theta := RtoD(d2.Bearing(origin, target))
	if theta < 0 {
		theta += 360
	}
	if theta >= 360 {
		// -tiny + 360 rounds up.
		theta = 0
	}
	return theta
}
