package contact

import "github.com/jakecoffman/contact/lane"

// NormalPart is the non-penetration row of one contact point.
type NormalPart[N lane.Real[N], V Vector[N, V], A Vector[N, A]] struct {
	// GCross2 maps a normal impulse to the angular velocity change of the body.
	GCross2 A
	// RHS is the target relative normal velocity, stabilization bias included.
	RHS N
	// RHSWithoutBias is RHS without the bias. The solver never reads it.
	RHSWithoutBias N
	// Impulse is the accumulated normal impulse. It is never negative.
	Impulse N
	// R is the inverse effective mass of the row.
	R N
}

// Solve runs one projected Gauss-Seidel step along dir and applies the
// impulse change to dv.
func (p *NormalPart[N, V, A]) Solve(dir V, im N, dv *DeltaVel[V, A]) {
	var zero N

	dimpulse := p.Residual(dir, dv)
	newImpulse := p.Impulse.Sub(p.R.Mul(dimpulse)).Max(zero)
	dlambda := newImpulse.Sub(p.Impulse)
	p.Impulse = newImpulse

	dv.Linear = dv.Linear.Add(dir.Scale(im.Neg().Mul(dlambda)))
	dv.Angular = dv.Angular.Add(p.GCross2.Scale(dlambda))
}

// WarmStart applies coef times the accumulated impulse to dv without
// changing it.
func (p *NormalPart[N, V, A]) WarmStart(dir V, im, coef N, dv *DeltaVel[V, A]) {
	lambda := p.Impulse.Mul(coef)
	dv.Linear = dv.Linear.Add(dir.Scale(im.Neg().Mul(lambda)))
	dv.Angular = dv.Angular.Add(p.GCross2.Scale(lambda))
}

// Residual is the remaining violation rate of the row against dv, the
// quantity Solve drives to zero while the impulse is not clamped.
func (p *NormalPart[N, V, A]) Residual(dir V, dv *DeltaVel[V, A]) N {
	return dir.Dot(dv.Linear).Neg().Add(p.GCross2.Dot(dv.Angular)).Add(p.RHS)
}
