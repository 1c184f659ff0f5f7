// Package metrics observes a running pbf.Simulator and accumulates
// scalar diagnostics over its trajectory, the way the teacher's
// metrics package observes a dynamo.System trajectory.
package metrics

import "github.com/san-kum/pbf/internal/pbf"

// Metric mirrors the teacher's dynamo.Metric shape, adapted to take a
// *pbf.Simulator snapshot instead of a dynamo.State/Control pair.
type Metric interface {
	Name() string
	Observe(sim *pbf.Simulator, t float64)
	Value() float64
	Reset()
}

// KineticEnergy tracks the mean total kinetic energy (sum of
// 0.5*|v|^2 over all particles) across observed steps.
type KineticEnergy struct {
	name    string
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(sim *pbf.Simulator, t float64) {
	sum := 0.0
	for _, v := range sim.Velocities() {
		sum += 0.5 * v.LengthSquared()
	}
	k.total += sum
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// Series records the instantaneous total kinetic energy at every
// observed step. Its Value is the most recent sample rather than a
// running mean; Values returns the whole series, which the CLI plots as
// a sparkline.
type Series struct {
	name   string
	values []float64
}

func NewSeries(name string) *Series {
	return &Series{name: name}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Observe(sim *pbf.Simulator, t float64) {
	sum := 0.0
	for _, v := range sim.Velocities() {
		sum += 0.5 * v.LengthSquared()
	}
	s.values = append(s.values, sum)
}

func (s *Series) Value() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

func (s *Series) Values() []float64 { return s.values }

func (s *Series) Reset() { s.values = s.values[:0] }
