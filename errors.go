package contact

import "errors"

// Sentinel errors returned by manifold construction and packing.
// Solving itself never fails.
var (
	ErrNoPoints         = errors.New("contact: manifold has no points")
	ErrTooManyPoints    = errors.New("contact: manifold has too many points")
	ErrDegenerateNormal = errors.New("contact: normal is not unit length")
	ErrNegativeFriction = errors.New("contact: friction coefficient is negative or not finite")
	ErrInvalidMass      = errors.New("contact: inverse mass or inertia is negative or not finite")
	ErrInvalidTimestep  = errors.New("contact: timestep must be positive and finite")
	ErrInvalidParams    = errors.New("contact: parameter is negative or not finite")
)
