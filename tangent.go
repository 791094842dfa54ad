package contact

import (
	"github.com/jakecoffman/contact/fpenv"
	"github.com/jakecoffman/contact/lane"
)

// Tangent is a friction row set. B is the tangent basis handed to it by the
// group solve: one axis in 2D, two in 3D.
type Tangent[N, V, A, B any] interface {
	// Solve runs one step with the friction cone radius limit.
	Solve(tangents B, im, limit N, dv *DeltaVel[V, A])
	// WarmStart applies coef times the accumulated impulse to dv.
	WarmStart(tangents B, im, coef N, dv *DeltaVel[V, A])
}

// Tangent2D is the friction row of a 2D contact point. Its impulse is boxed
// to [-limit, limit].
type Tangent2D[N lane.Real[N]] struct {
	GCross2 [1]N
	RHS     [1]N
	Impulse N
	R       [1]N
}

func (p *Tangent2D[N]) Solve(tangents [1]Vec2[N], im, limit N, dv *DeltaVel2D[N]) {
	dimpulse := tangents[0].Dot(dv.Linear).Neg().Add(p.GCross2[0].Dot(dv.Angular)).Add(p.RHS[0])
	newImpulse := p.Impulse.Sub(p.R[0].Mul(dimpulse)).Clamp(limit.Neg(), limit)
	dlambda := newImpulse.Sub(p.Impulse)
	p.Impulse = newImpulse

	dv.Linear = dv.Linear.Add(tangents[0].Scale(im.Neg().Mul(dlambda)))
	dv.Angular = dv.Angular.Add(p.GCross2[0].Scale(dlambda))
}

func (p *Tangent2D[N]) WarmStart(tangents [1]Vec2[N], im, coef N, dv *DeltaVel2D[N]) {
	lambda := p.Impulse.Mul(coef)
	dv.Linear = dv.Linear.Add(tangents[0].Scale(im.Neg().Mul(lambda)))
	dv.Angular = dv.Angular.Add(p.GCross2[0].Scale(lambda))
}

// Tangent3D is the friction row pair of a 3D contact point. Its impulse is
// capped to a disk of radius limit, never to a square.
type Tangent3D[N lane.Real[N]] struct {
	GCross2 [2]Vec3[N]
	RHS     [2]N
	Impulse Vec2[N]
	R       [2]N
}

func (p *Tangent3D[N]) Solve(tangents [2]Vec3[N], im, limit N, dv *DeltaVel3D[N]) {
	dimpulse0 := tangents[0].Dot(dv.Linear).Neg().Add(p.GCross2[0].Dot(dv.Angular)).Add(p.RHS[0])
	dimpulse1 := tangents[1].Dot(dv.Linear).Neg().Add(p.GCross2[1].Dot(dv.Angular)).Add(p.RHS[1])

	newImpulse := Vec2[N]{
		p.Impulse.X.Sub(p.R[0].Mul(dimpulse0)),
		p.Impulse.Y.Sub(p.R[1].Mul(dimpulse1)),
	}
	newImpulse = capImpulse(newImpulse, limit)
	dlambda := newImpulse.Sub(p.Impulse)
	p.Impulse = newImpulse

	dv.Linear = dv.Linear.
		Add(tangents[0].Scale(im.Neg().Mul(dlambda.X))).
		Add(tangents[1].Scale(im.Neg().Mul(dlambda.Y)))
	dv.Angular = dv.Angular.
		Add(p.GCross2[0].Scale(dlambda.X)).
		Add(p.GCross2[1].Scale(dlambda.Y))
}

func (p *Tangent3D[N]) WarmStart(tangents [2]Vec3[N], im, coef N, dv *DeltaVel3D[N]) {
	lambda := p.Impulse.Scale(coef)
	dv.Linear = dv.Linear.
		Add(tangents[0].Scale(im.Neg().Mul(lambda.X))).
		Add(tangents[1].Scale(im.Neg().Mul(lambda.Y)))
	dv.Angular = dv.Angular.
		Add(p.GCross2[0].Scale(lambda.X)).
		Add(p.GCross2[1].Scale(lambda.Y))
}

func capImpulse[N lane.Real[N]](impulse Vec2[N], limit N) Vec2[N] {
	defer fpenv.Relax()()
	return impulse.ClampLength(limit)
}
