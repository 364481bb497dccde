// Package f32 implements the mathutil helpers in single precision on
// ms2.Vec coordinates. It panics on illegal input like package must.
package f32

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

const (
	deg2rad = math32.Pi / 180
	rad2deg = 180 / math32.Pi
)

// Interval is a single precision interval. Min <= Max is assumed.
type Interval struct {
	Min, Max float32
}

// Round rounds value to the nearest multiple of 1/factor.
func Round(value float32, factor uint16) float32 {
	if factor == 0 {
		panic("round factor <= 0")
	}
	f := float32(factor)
	return math32.Round(value*f) / f
}

// Percent returns num as a percentage of total, or 0 if total is 0.
func Percent(num, total float32) float32 {
	if total == 0 {
		return 0
	}
	return num / total * 100
}

// ApplyPercent returns percent percentage points of total.
func ApplyPercent(total float32, percent uint32) float32 {
	return total * float32(percent) * 0.01
}

// Circumference returns 2*pi*radius truncated toward zero.
func Circumference(radius float32) uint32 {
	if !(radius >= 0) {
		panic("radius < 0")
	}
	c := 2 * math32.Pi * radius
	if c >= math.MaxUint32 {
		panic("circumference overflows uint32")
	}
	return uint32(c)
}

// DtoR converts degrees to radians.
func DtoR(degrees float32) float32 { return degrees * deg2rad }

// RtoD converts radians to degrees.
func RtoD(radians float32) float32 { return radians * rad2deg }

// Clamp limits value to in. A NaN value yields in.Min.
func Clamp(value float32, in Interval) float32 {
	if math32.IsNaN(value) {
		return in.Min
	}
	return math32.Max(math32.Min(value, in.Max), in.Min)
}

// IsBetween reports whether value lies in in, bounds included when inclusive is set.
func IsBetween(value float32, in Interval, inclusive bool) bool {
	if inclusive {
		return value >= in.Min && value <= in.Max
	}
	return value > in.Min && value < in.Max
}

// PolarToCartesian returns the point at radius and angle (degrees) around offset.
func PolarToCartesian(radius, angle float32, offset ms2.Vec) ms2.Vec {
	if !(radius >= 0) {
		panic("radius < 0")
	}
	s, c := math32.Sincos(DtoR(angle))
	return ms2.Add(ms2.Vec{X: radius * c, Y: radius * s}, offset)
}

// AngleFromPoints returns the bearing of target from origin in degrees,
// clockwise from +Y, in [0, 360).
func AngleFromPoints(origin, target ms2.Vec) float32 {
	d := ms2.Sub(origin, target)
	theta := RtoD(math32.Atan2(-d.X, -d.Y))
	if theta < 0 {
		theta += 360
	}
	if theta >= 360 {
		theta = 0
	}
	return theta
}
