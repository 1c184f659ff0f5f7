package pbf

import (
	"errors"
	"fmt"
)

// Domain errors for the simulator. ResetSystem returns ErrUnknownScene
// (wrapped in a SceneError) or ErrZeroRestDensity. SimulateTimestep
// returns ErrNonPositiveDt or ErrZeroRestDensity before it changes any
// state, and never fails once a step has started. New cannot fail, and
// no function in this package currently returns ErrLengthMismatch.
var (
	// ErrUnknownScene indicates reset was requested with an unregistered scene id.
	ErrUnknownScene = errors.New("pbf: unknown scene id")

	// ErrZeroRestDensity indicates setup_scene produced a non-positive rest
	// density, which would make the constraint solver divide by zero.
	ErrZeroRestDensity = errors.New("pbf: rest density is non-positive after scene setup")

	// ErrNonPositiveDt indicates simulate_timestep was called with dt <= 0.
	ErrNonPositiveDt = errors.New("pbf: dt must be positive")

	// ErrLengthMismatch indicates the particle-state arrays no longer agree
	// on N; this is always a programmer error, never a runtime condition.
	ErrLengthMismatch = errors.New("pbf: particle array length mismatch")
)

// SceneError wraps a scene-setup failure with the offending id.
type SceneError struct {
	SceneID int
	Wrapped error
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("scene %d: %s", e.SceneID, e.Wrapped.Error())
}

func (e *SceneError) Unwrap() error { return e.Wrapped }
