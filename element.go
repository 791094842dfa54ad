package contact

import "github.com/jakecoffman/contact/lane"

// Element is the full velocity constraint of one contact point between a
// dynamic body and the ground.
type Element[N lane.Real[N], V Vector[N, V], A Vector[N, A], T any] struct {
	Normal  NormalPart[N, V, A]
	Tangent T
}

type (
	Element2D[N lane.Real[N]] = Element[N, Vec2[N], N, Tangent2D[N]]
	Element3D[N lane.Real[N]] = Element[N, Vec3[N], Vec3[N], Tangent3D[N]]
)

// Zero2D returns an unsolved 2D element.
func Zero2D[N lane.Real[N]]() Element2D[N] {
	return Element2D[N]{}
}

// Zero3D returns an unsolved 3D element.
func Zero3D[N lane.Real[N]]() Element3D[N] {
	return Element3D[N]{}
}

type tangentOf[T, N, V, A, B any] interface {
	*T
	Tangent[N, V, A, B]
}

// SolveGroup2D runs one Gauss-Seidel sweep over elements, in order, against
// the shared accumulator dv. The tangent axis is the perpendicular of dir.
func SolveGroup2D[N lane.Real[N]](
	elements []Element2D[N],
	dir Vec2[N],
	im, friction N,
	dv *DeltaVel2D[N],
	solveNormal, solveFriction bool,
) {
	basis := func() [1]Vec2[N] {
		return [1]Vec2[N]{dir.Perp()}
	}
	solveGroup[N, Vec2[N], N, [1]Vec2[N], Tangent2D[N], *Tangent2D[N]](
		elements, dir, basis, im, friction, dv, solveNormal, solveFriction)
}

// SolveGroup3D runs one Gauss-Seidel sweep over elements, in order, against
// the shared accumulator dv. The tangent plane is spanned by tangent and
// dir x tangent.
func SolveGroup3D[N lane.Real[N]](
	elements []Element3D[N],
	dir, tangent Vec3[N],
	im, friction N,
	dv *DeltaVel3D[N],
	solveNormal, solveFriction bool,
) {
	basis := func() [2]Vec3[N] {
		return [2]Vec3[N]{tangent, dir.Cross(tangent)}
	}
	solveGroup[N, Vec3[N], Vec3[N], [2]Vec3[N], Tangent3D[N], *Tangent3D[N]](
		elements, dir, basis, im, friction, dv, solveNormal, solveFriction)
}

func solveGroup[N lane.Real[N], V Vector[N, V], A Vector[N, A], B any, T any, PT tangentOf[T, N, V, A, B]](
	elements []Element[N, V, A, T],
	dir V,
	basis func() B,
	im, friction N,
	dv *DeltaVel[V, A],
	solveNormal, solveFriction bool,
) {
	// Solve penetration.
	if solveNormal {
		for i := range elements {
			elements[i].Normal.Solve(dir, im, dv)
		}
	}

	// Solve friction against the normal impulse just computed.
	if solveFriction {
		tangents := basis()
		for i := range elements {
			e := &elements[i]
			limit := friction.Mul(e.Normal.Impulse)
			PT(&e.Tangent).Solve(tangents, im, limit, dv)
		}
	}
}

func warmStartGroup[N lane.Real[N], V Vector[N, V], A Vector[N, A], B any, T any, PT tangentOf[T, N, V, A, B]](
	elements []Element[N, V, A, T],
	dir V,
	tangents B,
	im, coef N,
	dv *DeltaVel[V, A],
) {
	for i := range elements {
		e := &elements[i]
		e.Normal.WarmStart(dir, im, coef, dv)
		PT(&e.Tangent).WarmStart(tangents, im, coef, dv)
	}
}
