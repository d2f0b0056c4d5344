package simulation

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"fortio.org/log"
)

// Recorder receives one event per committed atomic transition, so a tick
// that is bisected records one event per committed sub-step (spec.md §6:
// "one line per run"). Implementations must not block the driver indefinitely;
// Record is called synchronously from the tick that produced the event.
type Recorder interface {
	Record(t float64, event string)
}

// LogRecorder emits each event as a structured log line via fortio.org/log,
// tagged with a run ID so concurrent simulations' output can be told apart.
type LogRecorder struct {
	RunID string
}

func (r LogRecorder) Record(t float64, event string) {
	log.Infof("run=%s t=%.6f event=%s", r.RunID, t, event)
}

// SliceRecorder accumulates events in memory, for tests and short-lived
// experiments that want to inspect the full trace afterward.
type SliceRecorder struct {
	mu     sync.Mutex
	Events []Event
}

// Event is one (time, event) pair recorded by SliceRecorder.
type Event struct {
	Time float64
	Name string
}

func (r *SliceRecorder) Record(t float64, event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Time: t, Name: event})
}

// Snapshot returns a copy of the events recorded so far.
func (r *SliceRecorder) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.Events))
	copy(out, r.Events)

	return out
}

// CSVRecorder appends one "<time>,<event>" row per recorded event to an underlying
// writer, per spec.md §6's "one line per run" persisted-state contract.
// No ecosystem CSV library appears anywhere in this module's dependency
// family, so this is built on encoding/csv directly.
type CSVRecorder struct {
	mu sync.Mutex
	w  *csv.Writer
}

// NewCSVRecorder wraps w in a buffered csv.Writer. Callers must call Close
// to flush pending rows.
func NewCSVRecorder(w io.Writer) *CSVRecorder {
	return &CSVRecorder{w: csv.NewWriter(w)}
}

func (r *CSVRecorder) Record(t float64, event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.w.Write([]string{fmt.Sprintf("%.6f", t), event})
}

// Close flushes any buffered rows and reports the first write error, if any.
func (r *CSVRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w.Flush()

	return r.w.Error()
}
