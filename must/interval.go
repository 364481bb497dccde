package must

import "math"

// Interval is a closed or open range of the real line. Functions taking
// an Interval assume Min <= Max and do not check it. Use NewInterval
// to build a checked one.
type Interval struct {
	Min, Max float64
}

// NewInterval returns the interval [min, max].
func NewInterval(min, max float64) Interval {
	if math.IsNaN(min) || math.IsNaN(max) {
		panic("interval bound is NaN")
	}
	if min > max {
		panic("interval min > max")
	}
	return Interval{Min: min, Max: max}
}

// Clamp limits value to the interval. A NaN value yields in.Min.
func Clamp(value float64, in Interval) float64 {
	if math.IsNaN(value) {
		return in.Min
	}
	return math.Max(math.Min(value, in.Max), in.Min)
}

// IsBetween reports whether value lies in the interval. The bounds are
// part of the interval only if inclusive is true.
func IsBetween(value float64, in Interval, inclusive bool) bool {
	if inclusive {
		return value >= in.Min && value <= in.Max
	}
	return value > in.Min && value < in.Max
}
