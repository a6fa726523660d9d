package climate

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates invalid grid or profile parameters.
	ErrConfiguration = errors.New("climate: invalid configuration")

	// ErrStability indicates the explicit scheme is unstable at the
	// forcing interval (von Neumann criterion unmet). Fatal at setup;
	// never downgraded to a warning.
	ErrStability = errors.New("climate: stability criterion violated")

	// ErrDiverged indicates a non-finite temperature appeared mid-run.
	ErrDiverged = errors.New("climate: numeric divergence")

	// ErrCompleted indicates a step was requested after the terminal state.
	ErrCompleted = errors.New("climate: evaluation already completed")
)

// CellError scopes a mid-run failure to the grid cell that produced it;
// sibling cells are unaffected.
type CellError struct {
	Cid, Step int
	Wrapped   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d, timestep %d: %v", e.Cid, e.Step, e.Wrapped)
}

func (e *CellError) Unwrap() error { return e.Wrapped }
