package lane

import (
	"math"

	"golang.org/x/exp/constraints"
)

// X4 packs four independent float64 lanes.
type X4 [4]float64

// X4Of builds an X4 from up to four floats; missing lanes are zero.
func X4Of[F constraints.Float](vs ...F) X4 {
	var x X4
	for i := 0; i < len(vs) && i < len(x); i++ {
		x[i] = float64(vs[i])
	}
	return x
}

func (a X4) Add(b X4) X4 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a X4) Sub(b X4) X4 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (a X4) Mul(b X4) X4 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func (a X4) Div(b X4) X4 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

func (a X4) Neg() X4 {
	for i := range a {
		a[i] = -a[i]
	}
	return a
}

func (a X4) Abs() X4 {
	for i := range a {
		a[i] = math.Abs(a[i])
	}
	return a
}

func (a X4) Max(b X4) X4 {
	for i := range a {
		a[i] = math.Max(a[i], b[i])
	}
	return a
}

func (a X4) Min(b X4) X4 {
	for i := range a {
		a[i] = math.Min(a[i], b[i])
	}
	return a
}

func (a X4) Clamp(lo, hi X4) X4 {
	return a.Max(lo).Min(hi)
}

func (a X4) Sqrt() X4 {
	for i := range a {
		a[i] = math.Sqrt(a[i])
	}
	return a
}

func (a X4) Scale(b X4) X4 { return a.Mul(b) }
func (a X4) Dot(b X4) X4   { return a.Mul(b) }

func (a X4) CapFactor(limit X4) X4 {
	for i := range a {
		if a[i] <= limit[i] {
			a[i] = 1
		} else {
			a[i] = limit[i] / a[i]
		}
	}
	return a
}

func (X4) Splat(f float64) X4    { return X4{f, f, f, f} }
func (a X4) Lane(i int) float64 { return a[i] }
func (X4) Width() int           { return len(X4{}) }
