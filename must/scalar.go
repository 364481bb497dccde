// Package must implements the mathutil helpers with panics on illegal
// input instead of error returns.
package must

import "math"

const (
	pi = math.Pi
	// degrees to radians
	d2r = pi / 180
	r2d = 180 / pi
)

// Round rounds value to the nearest multiple of 1/factor. Halfway cases
// round away from zero. Round(43.28, 10) is 43.3.
func Round(value float64, factor int) float64 {
	if factor <= 0 {
		panic("round factor <= 0")
	}
	f := float64(factor)
	return math.Round(value*f) / f
}

// Percent returns num as a percentage of total. A zero total yields 0.
func Percent(num, total float64) float64 {
	if total == 0 {
		return 0
	}
	return num / total * 100
}

// PercentOf returns fraction as a percentage, i.e. Percent(fraction, 1).
func PercentOf(fraction float64) float64 {
	return Percent(fraction, 1)
}

// ApplyPercent returns percent percentage points of total. ApplyPercent(200, 50) is 100.
func ApplyPercent(total float64, percent uint) float64 {
	return total * float64(percent) * 0.01
}

// Circumference returns the circumference of a circle of the given radius
// truncated toward zero. It panics if the result does not fit in a uint.
func Circumference(radius float64) uint {
	if !(radius >= 0) {
		panic("radius < 0")
	}
	c := 2 * pi * radius
	if c >= math.MaxUint {
		panic("circumference overflows uint")
	}
	return uint(c)
}

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return degrees * d2r
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return radians * r2d
}
