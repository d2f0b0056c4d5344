package simulation

import (
	"fmt"

	"github.com/sentrymesh/evasion/alphacomplex"
	"github.com/sentrymesh/evasion/domain"
	"github.com/sentrymesh/evasion/geomutil"
	"github.com/sentrymesh/evasion/labelling"
	"github.com/sentrymesh/evasion/labelupdate"
	"github.com/sentrymesh/evasion/motion"
	"github.com/sentrymesh/evasion/statechange"
	"github.com/sentrymesh/evasion/topology"
)

// Simulation holds (points, radius, dt, labelling, topology) and advances
// them one tick at a time (spec.md §4.8). It is not safe for concurrent use
// by multiple goroutines; run independent simulations on independent
// *Simulation values, one per goroutine (spec.md §5).
type Simulation struct {
	points   [][]float64
	nFence   int
	radius   float64
	dt       float64
	t        float64

	model    motion.Model
	boundary domain.Boundary

	topology  *topology.Topology
	labelling *labelling.CycleLabelling

	opts Options
}

// New lays out boundary.Fence() first (indices 0..F-1, spec.md §6) followed
// by interiorPoints, builds the initial Topology and CycleLabelling for that
// point set at the given sensing radius and tick length, and returns a
// Simulation ready to Step or Run.
func New(interiorPoints [][]float64, radius, dt float64, model motion.Model, boundary domain.Boundary, opts Options) (*Simulation, error) {
	opts.normalize()

	fence := boundary.Fence()
	points := make([][]float64, 0, len(fence)+len(interiorPoints))
	points = append(points, fence...)
	points = append(points, interiorPoints...)

	top, err := topology.GenerateTopology(points, radius, freshKernel())
	if err != nil {
		return nil, err
	}

	cl, err := labelling.New(top)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		points:    points,
		nFence:    len(fence),
		radius:    radius,
		dt:        dt,
		model:     model,
		boundary:  boundary,
		topology:  top,
		labelling: cl,
		opts:      opts,
	}, nil
}

func freshKernel() alphacomplex.Kernel {
	return &alphacomplex.BruteForceKernel{}
}

// Time returns the simulation's current clock value.
func (s *Simulation) Time() float64 { return s.t }

// Labelling returns the live cycle labelling. Callers must not mutate it
// directly; Step and Run are the only writers.
func (s *Simulation) Labelling() *labelling.CycleLabelling { return s.labelling }

// Topology returns the current topology snapshot.
func (s *Simulation) Topology() *topology.Topology { return s.topology }

// Boundary returns the region geometry this simulation was built with.
func (s *Simulation) Boundary() domain.Boundary { return s.boundary }

// Points returns a copy of the current point list, fence points first.
func (s *Simulation) Points() [][]float64 {
	out := make([][]float64, len(s.points))
	for i, p := range s.points {
		cp := make([]float64, len(p))
		copy(cp, p)
		out[i] = cp
	}

	return out
}

// Step advances the simulation by exactly one tick of length dt, bisecting
// internally as many times as needed to land on atomic transitions
// (spec.md §4.8 steps 1-6).
func (s *Simulation) Step() error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}

	interior := s.points[s.nFence:]
	nextInterior, err := s.model.Step(interior)
	if err != nil {
		return err
	}

	target := make([][]float64, len(s.points))
	copy(target, s.points[:s.nFence])
	copy(target[s.nFence:], nextInterior)

	return s.tryStep(s.points, target, s.dt, 0)
}

// tryStep is the adaptive-bisection entry point: an explicit recursion that
// reports failure through its error return and never uses panic/recover for
// control flow. It builds the topology at targetPoints, classifies the
// resulting StateChange, and either commits it or recurses on the midpoint
// of oldPoints and targetPoints over half the remaining time step.
func (s *Simulation) tryStep(oldPoints, targetPoints [][]float64, stepDt float64, depth int) error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}

	newTop, err := topology.GenerateTopology(targetPoints, s.radius, freshKernel())
	if err != nil {
		return err
	}

	sc := statechange.New(newTop, s.topology)
	lu, buildErr := labelupdate.Build(sc, newTop)
	if buildErr == nil && lu.IsAtomic() {
		return s.commit(lu, newTop, targetPoints, stepDt)
	}

	if depth+1 > s.opts.MaxBisectionDepth {
		return &ErrMaxRecursionDepth{Depth: depth + 1, LastChange: sc}
	}

	mid := midpoints(oldPoints, targetPoints)
	halfDt := stepDt / 2

	if err := s.tryStep(oldPoints, mid, halfDt, depth+1); err != nil {
		return err
	}

	return s.tryStep(s.points, targetPoints, halfDt, depth+1)
}

// commit applies lu to the running labelling and advances state. It is the
// single point where (topology-build) happens-before (state-change)
// happens-before (label-update) happens-before (commit) resolves into an
// actual mutation (spec.md §5).
func (s *Simulation) commit(lu labelupdate.LabelUpdate, newTop *topology.Topology, newPoints [][]float64, stepDt float64) error {
	if err := s.labelling.Update(lu); err != nil {
		return fmt.Errorf("%w: %v", ErrLabellingFailed, err)
	}

	s.topology = newTop
	s.points = newPoints
	s.t += stepDt
	s.opts.Recorder.Record(s.t, lu.CaseName())

	return nil
}

// midpoints returns the component-wise midpoint of each pair of points in a
// and b (spec.md §4.8 step 6: "midpoint interpolation of (old, new)").
func midpoints(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = geomutil.Midpoint(a[i], b[i])
	}

	return out
}

// Run steps the simulation until has_intruder becomes false or endTime is
// reached, whichever comes first, returning the time at which it stopped
// (spec.md §4.8: "returns the first time at which has_intruder() becomes
// false, or the end time").
func (s *Simulation) Run(endTime float64) (float64, error) {
	if !s.labelling.HasIntruder() {
		return s.t, nil
	}

	for s.t < endTime {
		if err := s.opts.Ctx.Err(); err != nil {
			return s.t, err
		}
		if err := s.Step(); err != nil {
			return s.t, err
		}
		if !s.labelling.HasIntruder() {
			return s.t, nil
		}
	}

	return s.t, nil
}
