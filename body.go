package contact

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jakecoffman/contact/lane"
)

// Body2D is the dynamic side of a 2D ground contact.
type Body2D struct {
	InvMass    float64
	InvInertia float64

	Position        mgl64.Vec2
	Velocity        mgl64.Vec2
	AngularVelocity float64
}

// NewBody2D makes a body from its mass and moment of inertia. A zero or
// infinite mass gives a body that never moves.
func NewBody2D(mass, moment float64) *Body2D {
	return &Body2D{InvMass: inverse(mass), InvInertia: inverse(moment)}
}

func (b Body2D) String() string {
	return fmt.Sprintf("Body2D p=%v v=%v w=%v", b.Position, b.Velocity, b.AngularVelocity)
}

// Apply adds a solved velocity correction to the body's velocity.
func (b *Body2D) Apply(dv *DeltaVel2D[lane.F64]) {
	b.Velocity = b.Velocity.Add(Mgl2(dv.Linear))
	b.AngularVelocity += math.Sqrt(b.InvInertia) * float64(dv.Angular)
}

// Body3D is the dynamic side of a 3D ground contact.
type Body3D struct {
	InvMass float64
	// InvInertiaSqrt is the square root of the world-space inverse inertia
	// tensor. See InvInertiaSqrt3D.
	InvInertiaSqrt mgl64.Mat3

	Position        mgl64.Vec3
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// NewBody3D makes a body from its mass, principal moments of inertia and
// orientation.
func NewBody3D(mass float64, moments mgl64.Vec3, orientation mgl64.Quat) *Body3D {
	inv := mgl64.Vec3{inverse(moments[0]), inverse(moments[1]), inverse(moments[2])}
	return &Body3D{
		InvMass:        inverse(mass),
		InvInertiaSqrt: InvInertiaSqrt3D(inv, orientation),
	}
}

func (b Body3D) String() string {
	return fmt.Sprintf("Body3D p=%v v=%v w=%v", b.Position, b.Velocity, b.AngularVelocity)
}

func (b *Body3D) Apply(dv *DeltaVel3D[lane.F64]) {
	b.Velocity = b.Velocity.Add(Mgl3(dv.Linear))
	b.AngularVelocity = b.AngularVelocity.Add(b.InvInertiaSqrt.Mul3x1(Mgl3(dv.Angular)))
}

// InvInertiaSqrt3D rotates the square root of the principal inverse inertia
// into world space: R * diag(sqrt(inv)) * R^T.
func InvInertiaSqrt3D(principalInv mgl64.Vec3, orientation mgl64.Quat) mgl64.Mat3 {
	rot := orientation.Normalize().Mat4().Mat3()
	diag := mgl64.Diag3(mgl64.Vec3{
		math.Sqrt(principalInv[0]),
		math.Sqrt(principalInv[1]),
		math.Sqrt(principalInv[2]),
	})
	return rot.Mul3(diag).Mul3(rot.Transpose())
}

func inverse(f float64) float64 {
	if f == 0 || math.IsInf(f, 0) {
		return 0
	}
	return 1 / f
}

// Vec2FromMgl converts a mathgl vector to a single-lane solver vector.
func Vec2FromMgl(v mgl64.Vec2) Vec2[lane.F64] {
	return Vec2[lane.F64]{lane.F64(v[0]), lane.F64(v[1])}
}

func Vec3FromMgl(v mgl64.Vec3) Vec3[lane.F64] {
	return Vec3[lane.F64]{lane.F64(v[0]), lane.F64(v[1]), lane.F64(v[2])}
}

func Mgl2(v Vec2[lane.F64]) mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Y)}
}

func Mgl3(v Vec3[lane.F64]) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
