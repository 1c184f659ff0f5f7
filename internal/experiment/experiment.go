package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/pbf/internal/metrics"
	"github.com/san-kum/pbf/internal/pbf"
)

// Config describes one run: which scene, how long, and at what
// timestep, mirroring the teacher's experiment.Config shape.
type Config struct {
	SceneID  int
	Dt       float64
	Duration float64
	Tunables pbf.Tunables
}

// Result collects the per-step positions alongside final metric
// values, in place of the teacher's dynamo.Result (which records full
// State vectors; PBF's "state" is the particle position array, tracked
// directly from the simulator instead).
type Result struct {
	Frames     [][]pbf.Vec3
	Times      []float64
	StepsTaken int
	Metrics    map[string]float64
}

type Experiment struct {
	cfg       Config
	simulator *pbf.Simulator
	metrics   []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(ms []metrics.Metric) error {
	sim := pbf.NewWithTunables(e.cfg.Tunables)
	sim.SetSceneID(e.cfg.SceneID)
	if err := sim.ResetSystem(); err != nil {
		return fmt.Errorf("experiment setup: %w", err)
	}
	e.simulator = sim
	e.metrics = ms
	return nil
}

// Run steps the simulator for Duration/Dt steps, recording a frame and
// feeding every metric at each step. It does not persist anything to
// disk (that is internal/store's job), and records frames in memory
// only for the duration of one run, not across runs.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	steps := int(e.cfg.Duration / e.cfg.Dt)
	result := &Result{
		Frames: make([][]pbf.Vec3, 0, steps),
		Times:  make([]float64, 0, steps),
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := e.simulator.SimulateTimestep(e.cfg.Dt); err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
		t += e.cfg.Dt

		for _, m := range e.metrics {
			m.Observe(e.simulator, t)
		}

		frame := make([]pbf.Vec3, len(e.simulator.Positions()))
		copy(frame, e.simulator.Positions())
		result.Frames = append(result.Frames, frame)
		result.Times = append(result.Times, t)
		result.StepsTaken++
	}

	result.Metrics = make(map[string]float64, len(e.metrics))
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// GetSimulator exposes the underlying simulator for live-view use.
func (e *Experiment) GetSimulator() *pbf.Simulator { return e.simulator }

func DefaultMetrics() []metrics.Metric {
	return []metrics.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewContainment(),
	}
}
