package lane

import "math"

// F64 is a single float64 lane.
type F64 float64

func (a F64) Add(b F64) F64   { return a + b }
func (a F64) Sub(b F64) F64   { return a - b }
func (a F64) Mul(b F64) F64   { return a * b }
func (a F64) Div(b F64) F64   { return a / b }
func (a F64) Neg() F64        { return -a }
func (a F64) Abs() F64        { return F64(math.Abs(float64(a))) }
func (a F64) Max(b F64) F64   { return F64(math.Max(float64(a), float64(b))) }
func (a F64) Min(b F64) F64   { return F64(math.Min(float64(a), float64(b))) }
func (a F64) Sqrt() F64       { return F64(math.Sqrt(float64(a))) }
func (a F64) Scale(b F64) F64 { return a * b }
func (a F64) Dot(b F64) F64   { return a * b }

func (a F64) Clamp(lo, hi F64) F64 {
	return a.Max(lo).Min(hi)
}

func (a F64) CapFactor(limit F64) F64 {
	if a <= limit {
		return 1
	}
	return limit / a
}

func (F64) Splat(f float64) F64 { return F64(f) }
func (a F64) Lane(int) float64  { return float64(a) }
func (F64) Width() int          { return 1 }
