package fpenv_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakecoffman/contact"
	"github.com/jakecoffman/contact/fpenv"
	"github.com/jakecoffman/contact/lane"
)

func TestSolveGroup3D_CapMasksUnderflow(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Tiny R keeps every product in range except the squared length of the
	// friction impulse.
	e := contact.Zero3D[lane.F64]()
	e.Normal.Impulse = 1
	e.Tangent.R = [2]lane.F64{1e-200, 1e-200}
	e.Tangent.RHS = [2]lane.F64{-1, -1}
	elements := []contact.Element3D[lane.F64]{e}
	dir := contact.Vec3[lane.F64]{Z: -1}
	tangent := contact.Vec3[lane.F64]{X: 1}
	var dv contact.DeltaVel3D[lane.F64]

	orig := fpenv.GetCSR()
	unmasked := orig &^ fpenv.UnderflowMask

	// Nothing between the SetCSR calls may allocate or call into testify.
	var recovered any
	fpenv.SetCSR(unmasked)
	func() {
		defer func() { recovered = recover() }()
		contact.SolveGroup3D(elements, dir, tangent, 1, 1, &dv, false, true)
	}()
	after := fpenv.GetCSR()
	fpenv.SetCSR(orig)

	require.Nil(t, recovered)
	require.Equal(t, unmasked&fpenv.UnderflowMask, after&fpenv.UnderflowMask, "solve must restore the caller's masks")

	got := elements[0].Tangent.Impulse
	require.False(t, math.IsNaN(float64(got.X)) || math.IsInf(float64(got.X), 0))
	require.False(t, math.IsNaN(float64(got.Y)) || math.IsInf(float64(got.Y), 0))
	require.Equal(t, lane.F64(1e-200), got.X)
	require.Equal(t, lane.F64(1e-200), got.Y)
}
