// Package lane provides the scalar types the contact solver runs on.
//
// A lane type is either a plain float or a packed batch of independent
// floats advanced in lockstep. The solver is written once against Real
// and instantiated with F64, F32 or X4.
package lane

import "golang.org/x/exp/constraints"

// Real is the set of operations the solver needs from a scalar.
//
// The zero value of every Real is the additive identity. Scale and Dot are
// both multiplication; they let a scalar stand in for a 2D angular vector.
type Real[N any] interface {
	Add(N) N
	Sub(N) N
	Mul(N) N
	Div(N) N
	Neg() N
	Abs() N
	Max(N) N
	Min(N) N
	Clamp(lo, hi N) N
	Sqrt() N

	Scale(N) N
	Dot(N) N

	// CapFactor returns 1 in every lane where the receiver is at most limit
	// and limit/receiver in the others.
	CapFactor(limit N) N

	// Splat returns a value holding f in every lane.
	Splat(f float64) N
	// Lane returns the i-th lane as a float64.
	Lane(i int) float64
	// Width is the number of lanes.
	Width() int
}

// FromFloat converts any float into a lane type by splatting it.
func FromFloat[N Real[N], F constraints.Float](f F) N {
	var zero N
	return zero.Splat(float64(f))
}

// Lanes returns all lanes of v.
func Lanes[N Real[N]](v N) []float64 {
	out := make([]float64, v.Width())
	for i := range out {
		out[i] = v.Lane(i)
	}
	return out
}
