package simulation

import (
	"errors"
	"fmt"

	"github.com/sentrymesh/evasion/statechange"
)

// Errors from topology and alphacomplex (such as alphacomplex.ErrKernelFailure)
// are not re-declared here: a driver surfaces them unwrapped when a step
// fails outright rather than bisecting, since none is recoverable by
// trying a smaller time step.
var (
	// ErrLabellingFailed wraps an error returned while applying a
	// committed LabelUpdate to the running labelling.
	ErrLabellingFailed = errors.New("simulation: labelling update failed")
)

// ErrMaxRecursionDepth indicates the bisection recursion cap (spec.md
// §4.8: "recursion depth cap R") was exceeded without finding an atomic
// transition. It carries the last StateChange attempted, for diagnosis
// (spec.md §7.3).
type ErrMaxRecursionDepth struct {
	Depth      int
	LastChange *statechange.StateChange
}

func (e *ErrMaxRecursionDepth) Error() string {
	return fmt.Sprintf("simulation: exceeded max bisection depth %d, case %v", e.Depth, e.LastChange.Case())
}
