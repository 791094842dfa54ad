package contact

import (
	"fmt"

	"github.com/jakecoffman/contact/lane"
)

// Vector is what the solver needs from a linear or angular velocity type.
// Vec2, Vec3 and any lane.Real (a 2D angular velocity) satisfy it.
type Vector[N any, V any] interface {
	Add(V) V
	Scale(N) V
	Dot(V) N
}

type Vec2[N lane.Real[N]] struct {
	X, Y N
}

func (v Vec2[N]) String() string {
	return fmt.Sprintf("%v,%v", v.X, v.Y)
}

func (v Vec2[N]) Add(other Vec2[N]) Vec2[N] {
	return Vec2[N]{v.X.Add(other.X), v.Y.Add(other.Y)}
}

func (v Vec2[N]) Sub(other Vec2[N]) Vec2[N] {
	return Vec2[N]{v.X.Sub(other.X), v.Y.Sub(other.Y)}
}

func (v Vec2[N]) Neg() Vec2[N] {
	return Vec2[N]{v.X.Neg(), v.Y.Neg()}
}

func (v Vec2[N]) Scale(s N) Vec2[N] {
	return Vec2[N]{v.X.Mul(s), v.Y.Mul(s)}
}

func (v Vec2[N]) Dot(other Vec2[N]) N {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y))
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2[N]) Cross(other Vec2[N]) N {
	return v.X.Mul(other.Y).Sub(v.Y.Mul(other.X))
}

// Perp rotates v a quarter turn counter-clockwise. For a unit vector this is
// its orthonormal complement.
func (v Vec2[N]) Perp() Vec2[N] {
	return Vec2[N]{v.Y.Neg(), v.X}
}

func (v Vec2[N]) LengthSq() N {
	return v.Dot(v)
}

func (v Vec2[N]) Length() N {
	return v.Dot(v).Sqrt()
}

// ClampLength caps the length of v at length, lane by lane, keeping its
// direction. Squaring very large or very small components overflows or
// underflows; the result stays bounded but callers that may run with
// exceptions unmasked should wrap it in fpenv.Relax.
func (v Vec2[N]) ClampLength(length N) Vec2[N] {
	return v.Scale(v.Length().CapFactor(length))
}

type Vec3[N lane.Real[N]] struct {
	X, Y, Z N
}

func (v Vec3[N]) String() string {
	return fmt.Sprintf("%v,%v,%v", v.X, v.Y, v.Z)
}

func (v Vec3[N]) Add(other Vec3[N]) Vec3[N] {
	return Vec3[N]{v.X.Add(other.X), v.Y.Add(other.Y), v.Z.Add(other.Z)}
}

func (v Vec3[N]) Sub(other Vec3[N]) Vec3[N] {
	return Vec3[N]{v.X.Sub(other.X), v.Y.Sub(other.Y), v.Z.Sub(other.Z)}
}

func (v Vec3[N]) Neg() Vec3[N] {
	return Vec3[N]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

func (v Vec3[N]) Scale(s N) Vec3[N] {
	return Vec3[N]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

func (v Vec3[N]) Dot(other Vec3[N]) N {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y)).Add(v.Z.Mul(other.Z))
}

func (v Vec3[N]) Cross(other Vec3[N]) Vec3[N] {
	return Vec3[N]{
		v.Y.Mul(other.Z).Sub(v.Z.Mul(other.Y)),
		v.Z.Mul(other.X).Sub(v.X.Mul(other.Z)),
		v.X.Mul(other.Y).Sub(v.Y.Mul(other.X)),
	}
}

func (v Vec3[N]) LengthSq() N {
	return v.Dot(v)
}

func (v Vec3[N]) Length() N {
	return v.Dot(v).Sqrt()
}
