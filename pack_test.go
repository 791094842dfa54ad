package contact

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakecoffman/contact/lane"
)

func manifolds2D(t *testing.T) [Width]*Manifold2D[f64] {
	t.Helper()
	var ms [Width]*Manifold2D[f64]
	for l := range Width {
		body := NewBody2D(1+float64(l), 0.5+0.25*float64(l))
		body.Position = mgl64.Vec2{0.1 * float64(l), 0.5}
		body.Velocity = mgl64.Vec2{float64(l) - 1.5, -1 - 0.5*float64(l)}
		body.AngularVelocity = 0.3 * float64(l)

		var points []Point2D
		for i := 0; i <= l%3; i++ {
			points = append(points, Point2D{Position: mgl64.Vec2{-0.5 + 0.5*float64(i), 0}, Depth: 0.05 * float64(i+l)})
		}
		params := DefaultParams(dt)
		params.Friction = 0.2 + 0.2*float64(l)
		m, err := NewManifold2D(body, mgl64.Vec2{0, -1}, points, params)
		require.NoError(t, err)
		ms[l] = m
	}
	return ms
}

func clone2D(ms [Width]*Manifold2D[f64]) [Width]*Manifold2D[f64] {
	var out [Width]*Manifold2D[f64]
	for l, m := range ms {
		if m == nil {
			continue
		}
		c := *m
		c.Elements = append([]Element2D[f64](nil), m.Elements...)
		out[l] = &c
	}
	return out
}

func TestPack2D_MatchesScalar(t *testing.T) {
	scalar := manifolds2D(t)
	packedSrc := clone2D(scalar)

	var dvs [Width]DeltaVel2D[f64]
	for l, m := range scalar {
		for iter := 0; iter < 8; iter++ {
			m.Solve(&dvs[l], true, true)
		}
	}

	packed, err := Pack2D(packedSrc)
	require.NoError(t, err)
	require.Len(t, packed.Elements, 3)

	var zero [Width]*DeltaVel2D[f64]
	pdv := PackDeltaVel2D(zero)
	for iter := 0; iter < 8; iter++ {
		packed.Solve(&pdv, true, true)
	}

	var outs [Width]DeltaVel2D[f64]
	UnpackDeltaVel2D(&pdv, [Width]*DeltaVel2D[f64]{&outs[0], &outs[1], &outs[2], &outs[3]})
	Unpack2D(packed, packedSrc)

	for l := range Width {
		assert.InDelta(t, float64(dvs[l].Linear.X), float64(outs[l].Linear.X), 1e-12, "lane %d", l)
		assert.InDelta(t, float64(dvs[l].Linear.Y), float64(outs[l].Linear.Y), 1e-12, "lane %d", l)
		assert.InDelta(t, float64(dvs[l].Angular), float64(outs[l].Angular), 1e-12, "lane %d", l)
		for i, e := range scalar[l].Elements {
			got := packedSrc[l].Elements[i]
			assert.InDelta(t, float64(e.Normal.Impulse), float64(got.Normal.Impulse), 1e-12, "lane %d point %d", l, i)
			assert.InDelta(t, float64(e.Tangent.Impulse), float64(got.Tangent.Impulse), 1e-12, "lane %d point %d", l, i)
		}
	}
}

func TestPack2D_NilLanesAreInert(t *testing.T) {
	ms := manifolds2D(t)
	ms[1], ms[3] = nil, nil

	packed, err := Pack2D(ms)
	require.NoError(t, err)

	var dv DeltaVel2D[lane.X4]
	for iter := 0; iter < 4; iter++ {
		packed.Solve(&dv, true, true)
	}
	for _, l := range []int{1, 3} {
		assert.Equal(t, 0.0, dv.Linear.X[l])
		assert.Equal(t, 0.0, dv.Linear.Y[l])
		assert.Equal(t, 0.0, dv.Angular[l])
		for _, e := range packed.Elements {
			assert.Equal(t, 0.0, e.Normal.Impulse[l])
		}
	}
}

func TestPack_Errors(t *testing.T) {
	_, err := Pack2D([Width]*Manifold2D[f64]{})
	require.ErrorIs(t, err, ErrNoPoints)

	big := &Manifold2D[f64]{Elements: make([]Element2D[f64], MaxManifoldPoints+1)}
	_, err = Pack2D([Width]*Manifold2D[f64]{nil, big})
	require.ErrorIs(t, err, ErrTooManyPoints)

	big3 := &Manifold3D[f64]{Elements: make([]Element3D[f64], MaxManifoldPoints+1)}
	_, err = Pack3D([Width]*Manifold3D[f64]{big3})
	require.ErrorIs(t, err, ErrTooManyPoints)
}

func TestPack3D_MatchesScalar(t *testing.T) {
	var scalar, packedSrc [Width]*Manifold3D[f64]
	for l := range Width {
		q := mgl64.QuatRotate(0.3*float64(l), mgl64.Vec3{0, 1, 1}.Normalize())
		body := NewBody3D(1+float64(l), mgl64.Vec3{0.2, 0.3, 0.4}, q)
		body.Position = mgl64.Vec3{0, 0, 0.5}
		body.Velocity = mgl64.Vec3{0.5 * float64(l), -0.2, -1}
		body.AngularVelocity = mgl64.Vec3{0.1, 0.2 * float64(l), -0.1}

		points := []Point3D{
			{Position: mgl64.Vec3{-0.5, -0.5, 0}},
			{Position: mgl64.Vec3{0.5, -0.5, 0.01}},
			{Position: mgl64.Vec3{0, 0.5, 0}, Depth: 0.2},
		}[:1+l%3]
		params := DefaultParams(dt)
		params.Friction = 0.3
		m, err := NewManifold3D(body, mgl64.Vec3{0, 0, -1}, points, params)
		require.NoError(t, err)
		scalar[l] = m

		c := *m
		c.Elements = append([]Element3D[f64](nil), m.Elements...)
		packedSrc[l] = &c
	}

	var dvs [Width]DeltaVel3D[f64]
	for l, m := range scalar {
		m.WarmStart(&dvs[l], 0)
		for iter := 0; iter < 6; iter++ {
			m.Solve(&dvs[l], true, true)
		}
	}

	packed, err := Pack3D(packedSrc)
	require.NoError(t, err)
	pdv := PackDeltaVel3D([Width]*DeltaVel3D[f64]{})
	for iter := 0; iter < 6; iter++ {
		packed.Solve(&pdv, true, true)
	}

	var outs [Width]DeltaVel3D[f64]
	UnpackDeltaVel3D(&pdv, [Width]*DeltaVel3D[f64]{&outs[0], &outs[1], &outs[2], &outs[3]})
	Unpack3D(packed, packedSrc)

	for l := range Width {
		assert.InDelta(t, 0, float64(dvs[l].Linear.Sub(outs[l].Linear).Length()), 1e-12, "lane %d", l)
		assert.InDelta(t, 0, float64(dvs[l].Angular.Sub(outs[l].Angular).Length()), 1e-12, "lane %d", l)
		for i, e := range scalar[l].Elements {
			got := packedSrc[l].Elements[i]
			assert.InDelta(t, float64(e.Normal.Impulse), float64(got.Normal.Impulse), 1e-12)
			assert.InDelta(t, 0, float64(e.Tangent.Impulse.Sub(got.Tangent.Impulse).Length()), 1e-12)
		}
	}
}

func TestPackDeltaVel_RoundTrip(t *testing.T) {
	a := DeltaVel3D[f64]{Linear: v3(1, 2, 3), Angular: v3(-1, 0, 1)}
	b := DeltaVel3D[f64]{Linear: v3(4, 5, 6)}
	packed := PackDeltaVel3D([Width]*DeltaVel3D[f64]{&a, nil, &b})
	require.Equal(t, lane.X4{1, 0, 4, 0}, packed.Linear.X)

	var a2, b2 DeltaVel3D[f64]
	UnpackDeltaVel3D(&packed, [Width]*DeltaVel3D[f64]{&a2, nil, &b2})
	require.Equal(t, a, a2)
	require.Equal(t, b, b2)
}
