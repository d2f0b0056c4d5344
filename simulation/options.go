package simulation

import (
	"context"

	"github.com/google/uuid"
)

// defaultMaxBisectionDepth is spec.md §4.8's example recursion cap R.
const defaultMaxBisectionDepth = 25

// Options configures a Simulation. Use DefaultOptions and override only the
// fields a caller cares about, matching the teacher's FlowOptions/normalize
// convention (flow/types.go).
type Options struct {
	// Ctx governs cooperative cancellation (spec.md §5); checked at tick
	// boundaries and at every bisection re-entry.
	Ctx context.Context

	// MaxBisectionDepth caps recursive bisection before ErrMaxRecursionDepth
	// is raised.
	MaxBisectionDepth int

	// Recorder receives one event per committed atomic transition (several
	// for a bisected tick). Defaults to a
	// LogRecorder tagged with the run's RunID.
	Recorder Recorder

	// RunID correlates this run's log lines and recorded events. A random
	// UUID is generated if left empty.
	RunID string
}

// DefaultOptions returns production-safe defaults: a background context, the
// spec's example recursion cap, a fresh run ID, and a LogRecorder tagged
// with that ID.
func DefaultOptions() Options {
	id := uuid.NewString()

	return Options{
		Ctx:               context.Background(),
		MaxBisectionDepth: defaultMaxBisectionDepth,
		RunID:             id,
		Recorder:          LogRecorder{RunID: id},
	}
}

// normalize fills in any zero-valued field with its default.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.MaxBisectionDepth <= 0 {
		o.MaxBisectionDepth = defaultMaxBisectionDepth
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	if o.Recorder == nil {
		o.Recorder = LogRecorder{RunID: o.RunID}
	}
}
