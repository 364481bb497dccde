// Package mathutil provides scalar and 2D geometry helpers: rounding,
// percentages, circle circumference, angle conversion, interval clamping
// and membership, polar coordinates and bearings.
//
// Functions that can receive an input outside their domain return an error
// wrapping ErrInvalidArgument. Package must holds panicking versions of
// the same functions.
package mathutil

import (
	"github.com/soypat/mathutil/must"
	"gonum.org/v1/gonum/spatial/r2"
)

// Round rounds value to the nearest multiple of 1/factor. factor must be positive.
func Round(value float64, factor int) (v float64, err error) {
	defer catch(&err)
	return must.Round(value, factor), err
}

// Percent returns num as a percentage of total. It returns 0 if total is 0.
func Percent(num, total float64) float64 {
	return must.Percent(num, total)
}

// PercentOf converts a fraction to a percentage.
func PercentOf(fraction float64) float64 {
	return must.PercentOf(fraction)
}

// ApplyPercent returns percent percentage points of total.
func ApplyPercent(total float64, percent uint) float64 {
	return must.ApplyPercent(total, percent)
}

// Circumference returns the circumference of a circle truncated toward zero.
// radius must be non-negative and the result must fit in a uint.
func Circumference(radius float64) (c uint, err error) {
	defer catch(&err)
	return must.Circumference(radius), err
}

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return must.DtoR(degrees)
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return must.RtoD(radians)
}

// PolarToCartesian returns the point at radius and angle (degrees) around offset.
func PolarToCartesian(radius, angle float64, offset r2.Vec) (p r2.Vec, err error) {
	defer catch(&err)
	return must.PolarToCartesian(radius, angle, offset), err
}

// AngleFromPoints returns the bearing of target from origin in degrees,
// clockwise from +Y, in [0, 360).
func AngleFromPoints(origin, target r2.Vec) float64 {
	return must.AngleFromPoints(origin, target)
}
