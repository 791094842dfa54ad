package lane

import "github.com/chewxy/math32"

// F32 is a single float32 lane.
type F32 float32

func (a F32) Add(b F32) F32   { return a + b }
func (a F32) Sub(b F32) F32   { return a - b }
func (a F32) Mul(b F32) F32   { return a * b }
func (a F32) Div(b F32) F32   { return a / b }
func (a F32) Neg() F32        { return -a }
func (a F32) Abs() F32        { return F32(math32.Abs(float32(a))) }
func (a F32) Max(b F32) F32   { return F32(math32.Max(float32(a), float32(b))) }
func (a F32) Min(b F32) F32   { return F32(math32.Min(float32(a), float32(b))) }
func (a F32) Sqrt() F32       { return F32(math32.Sqrt(float32(a))) }
func (a F32) Scale(b F32) F32 { return a * b }
func (a F32) Dot(b F32) F32   { return a * b }

func (a F32) Clamp(lo, hi F32) F32 {
	return a.Max(lo).Min(hi)
}

func (a F32) CapFactor(limit F32) F32 {
	if a <= limit {
		return 1
	}
	return limit / a
}

func (F32) Splat(f float64) F32 { return F32(f) }
func (a F32) Lane(int) float64  { return float64(a) }
func (F32) Width() int          { return 1 }
