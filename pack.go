package contact

import (
	"fmt"

	"github.com/jakecoffman/contact/lane"
)

// Width of a packed manifold.
const Width = len(lane.X4{})

// Pack2D interleaves up to four single-lane manifolds into one packed
// manifold so a single solve advances all of them. Each lane must belong to
// a different body. Nil entries and missing points become inert lanes: a
// zero element has a zero R and never produces an impulse.
func Pack2D(ms [Width]*Manifold2D[lane.F64]) (*Manifold2D[lane.X4], error) {
	n, err := packedLen(func(i int) int {
		if ms[i] == nil {
			return 0
		}
		return len(ms[i].Elements)
	})
	if err != nil {
		return nil, err
	}

	out := &Manifold2D[lane.X4]{Elements: make([]Element2D[lane.X4], n)}
	for l, m := range ms {
		if m == nil {
			continue
		}
		out.Normal.X[l], out.Normal.Y[l] = float64(m.Normal.X), float64(m.Normal.Y)
		out.InvMass[l] = float64(m.InvMass)
		out.Friction[l] = float64(m.Friction)

		for i, e := range m.Elements {
			p := &out.Elements[i]
			p.Normal.GCross2[l] = float64(e.Normal.GCross2)
			p.Normal.RHS[l] = float64(e.Normal.RHS)
			p.Normal.RHSWithoutBias[l] = float64(e.Normal.RHSWithoutBias)
			p.Normal.Impulse[l] = float64(e.Normal.Impulse)
			p.Normal.R[l] = float64(e.Normal.R)

			p.Tangent.GCross2[0][l] = float64(e.Tangent.GCross2[0])
			p.Tangent.RHS[0][l] = float64(e.Tangent.RHS[0])
			p.Tangent.Impulse[l] = float64(e.Tangent.Impulse)
			p.Tangent.R[0][l] = float64(e.Tangent.R[0])
		}
	}
	return out, nil
}

// Unpack2D writes the impulses of a packed manifold back into its sources.
func Unpack2D(packed *Manifold2D[lane.X4], ms [Width]*Manifold2D[lane.F64]) {
	for l, m := range ms {
		if m == nil {
			continue
		}
		for i := range m.Elements {
			m.Elements[i].Normal.Impulse = lane.F64(packed.Elements[i].Normal.Impulse[l])
			m.Elements[i].Tangent.Impulse = lane.F64(packed.Elements[i].Tangent.Impulse[l])
		}
	}
}

// PackDeltaVel2D gathers one accumulator per lane.
func PackDeltaVel2D(dvs [Width]*DeltaVel2D[lane.F64]) DeltaVel2D[lane.X4] {
	var out DeltaVel2D[lane.X4]
	for l, dv := range dvs {
		if dv == nil {
			continue
		}
		out.Linear.X[l], out.Linear.Y[l] = float64(dv.Linear.X), float64(dv.Linear.Y)
		out.Angular[l] = float64(dv.Angular)
	}
	return out
}

// UnpackDeltaVel2D scatters a packed accumulator back into its lanes.
func UnpackDeltaVel2D(packed *DeltaVel2D[lane.X4], dvs [Width]*DeltaVel2D[lane.F64]) {
	for l, dv := range dvs {
		if dv == nil {
			continue
		}
		dv.Linear = Vec2[lane.F64]{lane.F64(packed.Linear.X[l]), lane.F64(packed.Linear.Y[l])}
		dv.Angular = lane.F64(packed.Angular[l])
	}
}

func Pack3D(ms [Width]*Manifold3D[lane.F64]) (*Manifold3D[lane.X4], error) {
	n, err := packedLen(func(i int) int {
		if ms[i] == nil {
			return 0
		}
		return len(ms[i].Elements)
	})
	if err != nil {
		return nil, err
	}

	out := &Manifold3D[lane.X4]{Elements: make([]Element3D[lane.X4], n)}
	for l, m := range ms {
		if m == nil {
			continue
		}
		setLane3(&out.Normal, l, m.Normal)
		setLane3(&out.Tangent, l, m.Tangent)
		out.InvMass[l] = float64(m.InvMass)
		out.Friction[l] = float64(m.Friction)

		for i, e := range m.Elements {
			p := &out.Elements[i]
			setLane3(&p.Normal.GCross2, l, e.Normal.GCross2)
			p.Normal.RHS[l] = float64(e.Normal.RHS)
			p.Normal.RHSWithoutBias[l] = float64(e.Normal.RHSWithoutBias)
			p.Normal.Impulse[l] = float64(e.Normal.Impulse)
			p.Normal.R[l] = float64(e.Normal.R)

			for k := range 2 {
				setLane3(&p.Tangent.GCross2[k], l, e.Tangent.GCross2[k])
				p.Tangent.RHS[k][l] = float64(e.Tangent.RHS[k])
				p.Tangent.R[k][l] = float64(e.Tangent.R[k])
			}
			p.Tangent.Impulse.X[l] = float64(e.Tangent.Impulse.X)
			p.Tangent.Impulse.Y[l] = float64(e.Tangent.Impulse.Y)
		}
	}
	return out, nil
}

func Unpack3D(packed *Manifold3D[lane.X4], ms [Width]*Manifold3D[lane.F64]) {
	for l, m := range ms {
		if m == nil {
			continue
		}
		for i := range m.Elements {
			p := &packed.Elements[i]
			m.Elements[i].Normal.Impulse = lane.F64(p.Normal.Impulse[l])
			m.Elements[i].Tangent.Impulse = Vec2[lane.F64]{
				lane.F64(p.Tangent.Impulse.X[l]),
				lane.F64(p.Tangent.Impulse.Y[l]),
			}
		}
	}
}

func PackDeltaVel3D(dvs [Width]*DeltaVel3D[lane.F64]) DeltaVel3D[lane.X4] {
	var out DeltaVel3D[lane.X4]
	for l, dv := range dvs {
		if dv == nil {
			continue
		}
		setLane3(&out.Linear, l, dv.Linear)
		setLane3(&out.Angular, l, dv.Angular)
	}
	return out
}

func UnpackDeltaVel3D(packed *DeltaVel3D[lane.X4], dvs [Width]*DeltaVel3D[lane.F64]) {
	for l, dv := range dvs {
		if dv == nil {
			continue
		}
		dv.Linear = getLane3(packed.Linear, l)
		dv.Angular = getLane3(packed.Angular, l)
	}
}

func packedLen(count func(i int) int) (int, error) {
	n := 0
	for i := range Width {
		c := count(i)
		if c > MaxManifoldPoints {
			return 0, fmt.Errorf("%w: lane %d has %d", ErrTooManyPoints, i, c)
		}
		n = max(n, c)
	}
	if n == 0 {
		return 0, ErrNoPoints
	}
	return n, nil
}

func setLane3(dst *Vec3[lane.X4], l int, v Vec3[lane.F64]) {
	dst.X[l], dst.Y[l], dst.Z[l] = float64(v.X), float64(v.Y), float64(v.Z)
}

func getLane3(v Vec3[lane.X4], l int) Vec3[lane.F64] {
	return Vec3[lane.F64]{lane.F64(v.X[l]), lane.F64(v.Y[l]), lane.F64(v.Z[l])}
}
