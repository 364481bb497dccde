package f32

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/mathutil/must"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-3

func TestAgainstFloat64(t *testing.T) {
	for _, test := range []struct {
		name     string
		got, std float64
	}{
		{"round", float64(Round(43.28, 10)), must.Round(43.28, 10)},
		{"percent", float64(Percent(50, 200)), must.Percent(50, 200)},
		{"percent zero", float64(Percent(84, 0)), must.Percent(84, 0)},
		{"apply", float64(ApplyPercent(18432, 50)), must.ApplyPercent(18432, 50)},
		{"circ", float64(Circumference(20)), float64(must.Circumference(20))},
		{"dtor", float64(DtoR(90)), must.DtoR(90)},
		{"rtod", float64(RtoD(1)), must.RtoD(1)},
		{"clamp", float64(Clamp(12, Interval{1, 10})), must.Clamp(12, must.Interval{Min: 1, Max: 10})},
		{"angle", float64(AngleFromPoints(ms2.Vec{X: 1, Y: 1}, ms2.Vec{X: 3, Y: 0})), must.AngleFromPoints(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 3, Y: 0})},
	} {
		if !scalar.EqualWithinAbs(test.got, test.std, tol) {
			t.Errorf("%s: float32 %g, float64 %g", test.name, test.got, test.std)
		}
	}
}

func TestPolarToCartesian(t *testing.T) {
	got := PolarToCartesian(20, 90, ms2.Vec{X: 50, Y: 50})
	if math.Abs(float64(got.X-50)) > tol || math.Abs(float64(got.Y-70)) > tol {
		t.Errorf("got %v, want {50 70}", got)
	}
}

func TestClampNaN(t *testing.T) {
	if got := Clamp(math32.NaN(), Interval{1, 10}); got != 1 {
		t.Errorf("Clamp(NaN) = %g, want 1", got)
	}
}

func TestIsBetween(t *testing.T) {
	in := Interval{Min: 1, Max: 10}
	if !IsBetween(5, in, false) || IsBetween(1, in, false) || !IsBetween(1, in, true) {
		t.Error("IsBetween on [1, 10] disagrees with definition")
	}
}

func TestAngleFromPointsRange(t *testing.T) {
	pts := []float32{-1e30, -2, -1e-30, 0, 1e-30, 3, 1e30}
	for _, ox := range pts {
		for _, oy := range pts {
			for _, tx := range pts {
				for _, ty := range pts {
					got := AngleFromPoints(ms2.Vec{X: ox, Y: oy}, ms2.Vec{X: tx, Y: ty})
					if !(got >= 0 && got < 360) {
						t.Fatalf("angle %g out of [0, 360)", got)
					}
				}
			}
		}
	}
}

func TestIllegal(t *testing.T) {
	for name, fn := range map[string]func(){
		"round": func() { Round(1, 0) },
		"circ":  func() { Circumference(-1) },
		"inf":   func() { Circumference(float32(math.Inf(1))) },
		"huge":  func() { Circumference(1e9) },
		"polar": func() { PolarToCartesian(-1, 0, ms2.Vec{}) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			fn()
		}()
	}
}
