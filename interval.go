package mathutil

import "github.com/soypat/mathutil/must"

// Interval is a range [Min, Max] or (Min, Max). Clamp and IsBetween assume
// Min <= Max.
type Interval = must.Interval

// NewInterval returns a checked interval. It fails if min > max or either bound is NaN.
func NewInterval(min, max float64) (in Interval, err error) {
	defer catch(&err)
	return must.NewInterval(min, max), err
}

// Clamp limits value to in. A NaN value yields in.Min.
func Clamp(value float64, in Interval) float64 {
	return must.Clamp(value, in)
}

// IsBetween reports whether value lies in in, including the bounds when inclusive is set.
func IsBetween(value float64, in Interval, inclusive bool) bool {
	return must.IsBetween(value, in, inclusive)
}
