package pbf

import (
	"math"
	"testing"
)

// singleParticleSim builds a scene-0-shaped simulator with exactly one
// particle, bypassing setupScene's lattice sizing, for tests that only
// care about how a single particle falls and collides.
func singleParticleSim(pos Vec3) *Simulator {
	s := New()
	s.scene = SceneParams{
		Tank:     Vec3{0.8, 1.5, 0.8},
		SlidePos: 1.0,
		SlideDir: -1,
		SlideVel: 1.0,
	}
	s.h = s.tunables.Radius * s.tunables.Ratio
	s.grid = newSpatialHash(s.scene.Tank, s.h)
	s.p = newParticles(1)
	s.p.x[0] = pos
	s.p.xPred[0] = pos
	const factor = invPi * 315.0 * 5.0 * 5.0 * 5.0 / (64.0 * 9.0 * 9.0 * 9.0)
	s.restDensity = factor * s.tunables.Num / (s.h * s.h * s.h)
	return s
}

// TestFreeFallClampsToFloor drops a single particle from the origin under
// gravity and checks it settles at the clamped floor -0.735 after enough
// steps and never falls further.
func TestFreeFallClampsToFloor(t *testing.T) {
	sim := singleParticleSim(Vec3{})
	const dt = 1.0 / 200

	floor := -0.5*sim.scene.Tank.Y + sim.tunables.Radius // -0.735
	prevY := 0.0
	clampedAt := -1
	for i := 1; i <= 100; i++ {
		if err := sim.SimulateTimestep(dt); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		y := sim.Positions()[0].Y
		if y > prevY+1e-12 {
			t.Fatalf("step %d: y increased from %v to %v without a force to push it up", i, prevY, y)
		}
		prevY = y
		if clampedAt < 0 && math.Abs(y-floor) < 1e-9 {
			clampedAt = i
		}
	}

	if math.Abs(prevY-floor) > 1e-5 {
		t.Errorf("final y = %v, want %v (clamped floor)", prevY, floor)
	}
	if clampedAt < 0 {
		t.Error("particle never reached the clamped floor within 100 steps")
	}
	// x, z never move for a particle that starts centered with no lateral force
	if p := sim.Positions()[0]; math.Abs(p.X) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Errorf("lateral drift with no lateral force: x=%v z=%v", p.X, p.Z)
	}
}

// TestSlideWallStaysInBounds runs 1000 steps of scene 1 and checks that
// slidePos remains in [0.5, 1.0] and completes at least one full
// reflection cycle.
func TestSlideWallStaysInBounds(t *testing.T) {
	sim := New()
	sim.SetSceneID(1)
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("ResetSystem: %v", err)
	}

	sawLow, sawHigh := false, false
	for i := 0; i < 1000; i++ {
		if err := sim.SimulateTimestep(1.0 / 200); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		sp := sim.SlidePos()
		if sp < 0.5-1e-9 || sp > 1.0+1e-9 {
			t.Fatalf("step %d: slidePos = %v out of [0.5, 1.0]", i, sp)
		}
		if sp < 0.55 {
			sawLow = true
		}
		if sp > 0.95 {
			sawHigh = true
		}
	}
	if !sawLow || !sawHigh {
		t.Error("slide wall never completed a full back-and-forth cycle")
	}
}

// TestContainmentInvariant checks property #1: committed positions stay
// within tolerance of the legal tank interval, across scenes 0 and 1.
func TestContainmentInvariant(t *testing.T) {
	for _, sceneID := range []int{0, 1} {
		sim := New()
		sim.SetSceneID(sceneID)
		if err := sim.ResetSystem(); err != nil {
			t.Fatalf("scene %d: ResetSystem: %v", sceneID, err)
		}
		r := sim.Radius()
		const tau = 1e-5

		for step := 0; step < 60; step++ {
			if err := sim.SimulateTimestep(1.0 / 200); err != nil {
				t.Fatalf("scene %d step %d: %v", sceneID, step, err)
			}
			tank := sim.Tank()
			xHi := 0.5*tank.X*sim.SlidePos() - r
			for i, p := range sim.Positions() {
				if p.X > xHi+tau || p.X < -0.5*tank.X+r-tau {
					t.Fatalf("scene %d step %d particle %d: x=%v out of bounds", sceneID, step, i, p.X)
				}
				if p.Y > 0.5*tank.Y-r+tau || p.Y < -0.5*tank.Y+r-tau {
					t.Fatalf("scene %d step %d particle %d: y=%v out of bounds", sceneID, step, i, p.Y)
				}
				if p.Z > 0.5*tank.Z-r+tau || p.Z < -0.5*tank.Z+r-tau {
					t.Fatalf("scene %d step %d particle %d: z=%v out of bounds", sceneID, step, i, p.Z)
				}
			}
		}
	}
}

// TestRestStateRelaxes checks property #7: with gravity zeroed and zero
// initial velocity, the fluid settles rather than drifting.
func TestRestStateRelaxes(t *testing.T) {
	sim := New()
	sim.tunables.Gravity = Vec3{}
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("ResetSystem: %v", err)
	}

	for i := 0; i < 200; i++ {
		if err := sim.SimulateTimestep(1.0 / 200); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	maxSpeed := 0.0
	for _, v := range sim.Velocities() {
		if l := v.Length(); l > maxSpeed {
			maxSpeed = l
		}
	}
	if maxSpeed >= 1e-2 {
		t.Errorf("max |v| after 200 steps = %v, want < 1e-2", maxSpeed)
	}
}

// TestEnergyNonIncreasing checks property #8: with gravity zeroed, total
// kinetic energy after 100 steps does not exceed its value after step 1.
func TestEnergyNonIncreasing(t *testing.T) {
	sim := New()
	sim.tunables.Gravity = Vec3{}
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("ResetSystem: %v", err)
	}

	kinetic := func() float64 {
		sum := 0.0
		for _, v := range sim.Velocities() {
			sum += v.LengthSquared()
		}
		return sum
	}

	if err := sim.SimulateTimestep(1.0 / 200); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	e1 := kinetic()

	for i := 1; i < 100; i++ {
		if err := sim.SimulateTimestep(1.0 / 200); err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
	}
	e100 := kinetic()

	if e100 > e1+1e-9 {
		t.Errorf("kinetic energy increased under no forcing: e1=%v e100=%v", e1, e100)
	}
}
