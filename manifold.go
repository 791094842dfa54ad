package contact

import "github.com/jakecoffman/contact/lane"

// Manifold2D is the set of contact points between one dynamic body and the
// ground that share a normal.
type Manifold2D[N lane.Real[N]] struct {
	Elements []Element2D[N]
	// IDs identify contact points across steps for warm starting. Optional.
	IDs []uint

	// Normal points from the body into the ground.
	Normal   Vec2[N]
	InvMass  N
	Friction N
}

// Tangents returns the friction axis used by Solve.
func (m *Manifold2D[N]) Tangents() [1]Vec2[N] {
	return [1]Vec2[N]{m.Normal.Perp()}
}

func (m *Manifold2D[N]) Solve(dv *DeltaVel2D[N], solveNormal, solveFriction bool) {
	SolveGroup2D(m.Elements, m.Normal, m.InvMass, m.Friction, dv, solveNormal, solveFriction)
}

// WarmStart applies coef times the accumulated impulses to dv. coef is
// dt/prevDt when the step size changes, 0 on the first step.
func (m *Manifold2D[N]) WarmStart(dv *DeltaVel2D[N], coef N) {
	warmStartGroup[N, Vec2[N], N, [1]Vec2[N], Tangent2D[N], *Tangent2D[N]](
		m.Elements, m.Normal, m.Tangents(), m.InvMass, coef, dv)
}

// RemoveBias makes subsequent solves target the unbiased velocity.
func (m *Manifold2D[N]) RemoveBias() {
	for i := range m.Elements {
		m.Elements[i].Normal.RHS = m.Elements[i].Normal.RHSWithoutBias
	}
}

// TotalImpulse is the linear impulse the ground has applied to the body.
func (m *Manifold2D[N]) TotalImpulse() Vec2[N] {
	var sum Vec2[N]
	t := m.Normal.Perp()
	for _, e := range m.Elements {
		sum = sum.Add(m.Normal.Scale(e.Normal.Impulse)).Add(t.Scale(e.Tangent.Impulse))
	}
	return sum.Neg()
}

// CarryImpulses copies the accumulated impulses of prev into m for every
// contact point whose ID matches.
func (m *Manifold2D[N]) CarryImpulses(prev *Manifold2D[N]) {
	for i, id := range m.IDs {
		for j, old := range prev.IDs {
			if id == old {
				m.Elements[i].Normal.Impulse = prev.Elements[j].Normal.Impulse
				m.Elements[i].Tangent.Impulse = prev.Elements[j].Tangent.Impulse
			}
		}
	}
}

// Manifold3D is the 3D counterpart of Manifold2D.
type Manifold3D[N lane.Real[N]] struct {
	Elements []Element3D[N]
	IDs      []uint

	Normal Vec3[N]
	// Tangent is a unit vector orthogonal to Normal. The second friction
	// axis is Normal x Tangent.
	Tangent  Vec3[N]
	InvMass  N
	Friction N
}

func (m *Manifold3D[N]) Tangents() [2]Vec3[N] {
	return [2]Vec3[N]{m.Tangent, m.Normal.Cross(m.Tangent)}
}

func (m *Manifold3D[N]) Solve(dv *DeltaVel3D[N], solveNormal, solveFriction bool) {
	SolveGroup3D(m.Elements, m.Normal, m.Tangent, m.InvMass, m.Friction, dv, solveNormal, solveFriction)
}

func (m *Manifold3D[N]) WarmStart(dv *DeltaVel3D[N], coef N) {
	warmStartGroup[N, Vec3[N], Vec3[N], [2]Vec3[N], Tangent3D[N], *Tangent3D[N]](
		m.Elements, m.Normal, m.Tangents(), m.InvMass, coef, dv)
}

func (m *Manifold3D[N]) RemoveBias() {
	for i := range m.Elements {
		m.Elements[i].Normal.RHS = m.Elements[i].Normal.RHSWithoutBias
	}
}

func (m *Manifold3D[N]) TotalImpulse() Vec3[N] {
	var sum Vec3[N]
	t := m.Tangents()
	for _, e := range m.Elements {
		sum = sum.
			Add(m.Normal.Scale(e.Normal.Impulse)).
			Add(t[0].Scale(e.Tangent.Impulse.X)).
			Add(t[1].Scale(e.Tangent.Impulse.Y))
	}
	return sum.Neg()
}

func (m *Manifold3D[N]) CarryImpulses(prev *Manifold3D[N]) {
	for i, id := range m.IDs {
		for j, old := range prev.IDs {
			if id == old {
				m.Elements[i].Normal.Impulse = prev.Elements[j].Normal.Impulse
				m.Elements[i].Tangent.Impulse = prev.Elements[j].Tangent.Impulse
			}
		}
	}
}
