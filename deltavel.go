package contact

import "github.com/jakecoffman/contact/lane"

// DeltaVel accumulates the velocity correction of one dynamic body.
//
// Angular is expressed in the inertia-scaled frame, sqrt(I)*omega, so the
// Jacobian terms of every part apply to it directly.
// Every element of a group mutates the same DeltaVel in turn.
type DeltaVel[V, A any] struct {
	Linear  V
	Angular A
}

type DeltaVel2D[N lane.Real[N]] = DeltaVel[Vec2[N], N]

type DeltaVel3D[N lane.Real[N]] = DeltaVel[Vec3[N], Vec3[N]]
