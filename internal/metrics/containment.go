package metrics

import "github.com/san-kum/pbf/internal/pbf"

const containmentTolerance = 1e-5

// Containment counts the fraction of observed steps in which every
// particle stayed within the scene's legal tank interval, grounded on
// the teacher's Stability metric (fraction of samples under a
// threshold) but checking the PBF containment invariant instead of a
// generic state-magnitude bound.
type Containment struct {
	name       string
	violations int
	samples    int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(sim *pbf.Simulator, t float64) {
	c.samples++
	tank := sim.Tank()
	r := sim.Radius()
	xHi := 0.5*tank.X*sim.SlidePos() - r
	for _, p := range sim.Positions() {
		if p.X > xHi+containmentTolerance || p.X < -0.5*tank.X+r-containmentTolerance ||
			p.Y > 0.5*tank.Y-r+containmentTolerance || p.Y < -0.5*tank.Y+r-containmentTolerance ||
			p.Z > 0.5*tank.Z-r+containmentTolerance || p.Z < -0.5*tank.Z+r-containmentTolerance {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
