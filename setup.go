package contact

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jakecoffman/contact/lane"
)

// MaxManifoldPoints is the most points a packed manifold carries.
const MaxManifoldPoints = 4

const normalTolerance = 1e-3

// Params are the per-step inputs of constraint setup.
type Params struct {
	Dt float64
	// Slop is the penetration depth left uncorrected.
	Slop float64
	// BiasCoef is the fraction of the remaining penetration corrected per step.
	BiasCoef float64
	// Restitution scales the approach speed of touching points into a
	// separation speed.
	Restitution float64
	Friction    float64
	// SurfaceVelocity is the tangential velocity of the ground surface, as on
	// a conveyor belt. 2D setup reads X and Y.
	SurfaceVelocity mgl64.Vec3
}

// DefaultParams returns the settings of a 60Hz space: 0.1 units of slop, and
// about 10% of the remaining overlap corrected per 1/60s, so roughly 0.2% is
// left after one second.
func DefaultParams(dt float64) Params {
	return Params{
		Dt:       dt,
		Slop:     0.1,
		BiasCoef: 1 - math.Pow(math.Pow(0.9, 60), dt),
		Friction: 0.5,
	}
}

func (p Params) validate() error {
	if !(p.Dt > 0) || math.IsInf(p.Dt, 1) {
		return fmt.Errorf("%w: dt=%v", ErrInvalidTimestep, p.Dt)
	}
	if !finiteNonNegative(p.Friction) {
		return fmt.Errorf("%w: %v", ErrNegativeFriction, p.Friction)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"slop", p.Slop},
		{"bias", p.BiasCoef},
		{"restitution", p.Restitution},
	} {
		if !finiteNonNegative(f.value) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidParams, f.name, f.value)
		}
	}
	for _, f := range p.SurfaceVelocity {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: surface velocity %v", ErrInvalidParams, p.SurfaceVelocity)
		}
	}
	return nil
}

// Point2D is one contact point with the ground.
type Point2D struct {
	Position mgl64.Vec2
	// Depth is the penetration depth; negative values are gaps.
	Depth float64
	// ID matches the point across steps for CarryImpulses.
	ID uint
}

type Point3D struct {
	Position mgl64.Vec3
	Depth    float64
	ID       uint
}

// NewManifold2D builds the velocity constraints of body against the ground.
// normal is a unit vector pointing from the body into the ground.
func NewManifold2D(body *Body2D, normal mgl64.Vec2, points []Point2D, params Params) (*Manifold2D[lane.F64], error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if !finiteNonNegative(body.InvMass) || !finiteNonNegative(body.InvInertia) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMass, body)
	}
	if l := normal.Len(); !(math.Abs(l-1) <= normalTolerance) {
		return nil, fmt.Errorf("%w: |%v| = %v", ErrDegenerateNormal, normal, l)
	}

	tangent := mgl64.Vec2{-normal[1], normal[0]}
	sqrtI := math.Sqrt(body.InvInertia)
	surface := mgl64.Vec2{params.SurfaceVelocity[0], params.SurfaceVelocity[1]}

	m := &Manifold2D[lane.F64]{
		Elements: make([]Element2D[lane.F64], len(points)),
		IDs:      make([]uint, len(points)),
		Normal:   Vec2FromMgl(normal),
		InvMass:  lane.F64(body.InvMass),
		Friction: lane.F64(params.Friction),
	}

	for i, pt := range points {
		r := pt.Position.Sub(body.Position)
		vel := body.Velocity.Add(mgl64.Vec2{-r[1], r[0]}.Mul(body.AngularVelocity))

		e := &m.Elements[i]
		m.IDs[i] = pt.ID

		gn := -sqrtI * cross2(r, normal)
		e.Normal.GCross2 = lane.F64(gn)
		e.Normal.R = lane.F64(inverse(body.InvMass + gn*gn))
		e.Normal.RHSWithoutBias, e.Normal.RHS = normalRHS(vel.Dot(normal), pt.Depth, params)

		gt := -sqrtI * cross2(r, tangent)
		e.Tangent.GCross2[0] = lane.F64(gt)
		e.Tangent.R[0] = lane.F64(inverse(body.InvMass + gt*gt))
		e.Tangent.RHS[0] = lane.F64(-vel.Sub(surface).Dot(tangent))
	}
	return m, nil
}

// NewManifold3D builds the velocity constraints of body against the ground.
// normal is a unit vector pointing from the body into the ground.
func NewManifold3D(body *Body3D, normal mgl64.Vec3, points []Point3D, params Params) (*Manifold3D[lane.F64], error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if !finiteNonNegative(body.InvMass) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMass, body)
	}
	for _, f := range body.InvInertiaSqrt {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMass, body.InvInertiaSqrt)
		}
	}
	if l := normal.Len(); !(math.Abs(l-1) <= normalTolerance) {
		return nil, fmt.Errorf("%w: |%v| = %v", ErrDegenerateNormal, normal, l)
	}

	t1 := TangentSeed(normal)
	tangents := [2]mgl64.Vec3{t1, normal.Cross(t1)}

	m := &Manifold3D[lane.F64]{
		Elements: make([]Element3D[lane.F64], len(points)),
		IDs:      make([]uint, len(points)),
		Normal:   Vec3FromMgl(normal),
		Tangent:  Vec3FromMgl(t1),
		InvMass:  lane.F64(body.InvMass),
		Friction: lane.F64(params.Friction),
	}

	for i, pt := range points {
		r := pt.Position.Sub(body.Position)
		vel := body.Velocity.Add(body.AngularVelocity.Cross(r))

		e := &m.Elements[i]
		m.IDs[i] = pt.ID

		gn := body.InvInertiaSqrt.Mul3x1(r.Cross(normal)).Mul(-1)
		e.Normal.GCross2 = Vec3FromMgl(gn)
		e.Normal.R = lane.F64(inverse(body.InvMass + gn.Dot(gn)))
		e.Normal.RHSWithoutBias, e.Normal.RHS = normalRHS(vel.Dot(normal), pt.Depth, params)

		for k, t := range tangents {
			gt := body.InvInertiaSqrt.Mul3x1(r.Cross(t)).Mul(-1)
			e.Tangent.GCross2[k] = Vec3FromMgl(gt)
			e.Tangent.R[k] = lane.F64(inverse(body.InvMass + gt.Dot(gt)))
			e.Tangent.RHS[k] = lane.F64(-vel.Sub(params.SurfaceVelocity).Dot(t))
		}
	}
	return m, nil
}

// normalRHS computes the target velocities of a normal row from the approach
// speed vn (positive towards the ground) and the penetration depth.
func normalRHS(vn, depth float64, params Params) (withoutBias, rhs lane.F64) {
	target := -vn
	if depth >= 0 {
		// Calculate the target bounce velocity.
		target -= params.Restitution * math.Max(vn, 0)
	} else {
		// Separated points may close the gap this step.
		target -= depth / params.Dt
	}
	bias := params.BiasCoef * math.Max(depth-params.Slop, 0) / params.Dt
	return lane.F64(target), lane.F64(target - bias)
}

// TangentSeed returns a unit vector orthogonal to the unit vector n. It is
// continuous everywhere except across n.z == 0 with n.x != 0.
func TangentSeed(n mgl64.Vec3) mgl64.Vec3 {
	sign := math.Copysign(1, n[2])
	a := -1 / (sign + n[2])
	b := n[0] * n[1] * a
	return mgl64.Vec3{1 + sign*n[0]*n[0]*a, sign * b, -sign * n[0]}
}

func cross2(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

func finiteNonNegative(f float64) bool {
	return f >= 0 && !math.IsInf(f, 1)
}
