// Command sentrywatch runs one or more independent intruder-evasion
// simulations concurrently and reports, for each, the time at which the
// patrolled region became provably clear of hiding spots (spec.md §5: "N
// independent *simulation.Simulation values on N goroutines").
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/google/uuid"

	"github.com/sentrymesh/evasion/domain"
	"github.com/sentrymesh/evasion/motion"
	"github.com/sentrymesh/evasion/simulation"
)

var (
	width     = flag.Float64("width", 10, "patrolled region width")
	height    = flag.Float64("height", 10, "patrolled region height")
	spacing   = flag.Float64("spacing", 1.0, "fence sensor spacing")
	radius    = flag.Float64("radius", 2.0, "sensor sensing radius")
	dt        = flag.Float64("dt", 0.1, "simulation tick length")
	endTime   = flag.Float64("end-time", 100, "simulation end time")
	sensors   = flag.Int("sensors", 10, "number of mobile interior sensors per run")
	runs      = flag.Int("runs", 1, "number of independent concurrent simulations")
	motionFl  = flag.String("motion", "randomwalk", "motion model: stationary, randomwalk, billiard, runandtumble")
	seedFlag  = flag.Int64("seed", 0, "base RNG seed; 0 picks one from the current time")
	csvPath   = flag.String("csv", "", "if set, write one CSV trace row per committed transition to this file (truncated first)")
	maxBisect = flag.Int("max-bisection-depth", 0, "bisection recursion cap; 0 uses the engine default")
)

func main() {
	cli.ArgsHelp = ""
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.Main()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var csvRecorder *simulation.CSVRecorder
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("failed to create csv output %q: %v", *csvPath, err)
		}
		defer f.Close()
		csvRecorder = simulation.NewCSVRecorder(f)
		defer csvRecorder.Close()
	}

	boundary := domain.Rectangle{XMin: 0, XMax: *width, YMin: 0, YMax: *height, Spacing: *spacing}

	var wg sync.WaitGroup
	results := make([]float64, *runs)
	errs := make([]error, *runs)

	for i := 0; i < *runs; i++ {
		wg.Add(1)
		go func(run int) {
			defer wg.Done()
			results[run], errs[run] = runOne(run, int64(run), seed, boundary, csvRecorder)
		}(i)
	}
	wg.Wait()

	for i := 0; i < *runs; i++ {
		if errs[i] != nil {
			log.Errf("run %d: %v", i, errs[i])
			continue
		}
		log.Infof("run %d: cleared at t=%.3f", i, results[i])
	}
}

// runOne seeds -sensors random interior points inside boundary, builds a
// Simulation with the requested motion model, and runs it until the region
// is clear or endTime. Reaching endTime with an intruder still possible is
// reported as an error.
func runOne(run int, salt, seed int64, boundary domain.Rectangle, csvRecorder *simulation.CSVRecorder) (float64, error) {
	rnd := rand.New(rand.NewSource(seed + salt))

	interior := make([][]float64, *sensors)
	for i := range interior {
		interior[i] = []float64{
			boundary.XMin + rnd.Float64()*(boundary.XMax-boundary.XMin),
			boundary.YMin + rnd.Float64()*(boundary.YMax-boundary.YMin),
		}
	}

	model, err := buildMotionModel(*motionFl, boundary, seed+salt)
	if err != nil {
		return 0, err
	}

	opts := simulation.DefaultOptions()
	opts.Ctx = context.Background()
	opts.RunID = uuidLikeRunID(run)
	if *maxBisect > 0 {
		opts.MaxBisectionDepth = *maxBisect
	}
	if csvRecorder != nil {
		opts.Recorder = csvRecorder
	}

	sim, err := simulation.New(interior, *radius, *dt, model, boundary, opts)
	if err != nil {
		return 0, err
	}

	t, err := sim.Run(*endTime)
	if err == nil && sim.Labelling().HasIntruder() {
		return t, fmt.Errorf("intruder still possible at end time t=%.3f", t)
	}

	return t, err
}

func buildMotionModel(name string, boundary domain.Boundary, seed int64) (motion.Model, error) {
	switch name {
	case "stationary":
		return motion.Stationary{}, nil
	case "randomwalk":
		return motion.NewRandomWalk(*dt, 1.0, boundary, seed), nil
	case "billiard":
		return motion.NewBilliard(*dt, 1.0, boundary, *sensors, seed), nil
	case "runandtumble":
		return motion.NewRunAndTumble(motion.NewBilliard(*dt, 1.0, boundary, *sensors, seed)), nil
	default:
		return nil, &errUnknownMotionModel{Name: name}
	}
}

// errUnknownMotionModel reports an unrecognized -motion flag value.
type errUnknownMotionModel struct{ Name string }

func (e *errUnknownMotionModel) Error() string {
	return "unknown motion model: " + e.Name
}

func uuidLikeRunID(run int) string {
	return uuid.NewString() + "-" + strconv.Itoa(run)
}
