package pbf

import "testing"

// TestScene0LatticeCount checks that scene 0's fresh lattice has exactly
// 275 particles (5 x 11 x 5).
func TestScene0LatticeCount(t *testing.T) {
	sim := New()
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("ResetSystem: %v", err)
	}
	if got := sim.NumParticles(); got != 275 {
		t.Errorf("scene 0 particle count = %d, want 275", got)
	}
	if sim.RestDensity() <= 0 {
		t.Error("rest density must be positive after setup")
	}
}

// TestResetIsIdempotent covers the round-trip law: resetting twice with
// the same scene produces identical particle counts and zero velocity.
func TestResetIsIdempotent(t *testing.T) {
	sim := New()
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("ResetSystem: %v", err)
	}
	n1 := sim.NumParticles()

	for i := 0; i < 50; i++ {
		if err := sim.SimulateTimestep(1.0 / 200); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	sim.SetSceneID(sim.SceneID())
	sim.SetSceneChanged(true)
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("second ResetSystem: %v", err)
	}

	if got := sim.NumParticles(); got != n1 {
		t.Errorf("particle count after reset = %d, want %d", got, n1)
	}
	for i, v := range sim.Velocities() {
		if v != (Vec3{}) {
			t.Fatalf("particle %d has non-zero velocity %v after reset", i, v)
		}
	}
}

// TestInvariantsAfterSetup checks that the particle, predicted-position,
// velocity, and neighbor-list arrays all have equal length and that
// restDensity is positive after setup.
func TestInvariantsAfterSetup(t *testing.T) {
	sim := New()
	sim.SetSceneID(1)
	if err := sim.ResetSystem(); err != nil {
		t.Fatalf("ResetSystem: %v", err)
	}
	n := sim.NumParticles()
	if len(sim.p.x) != n || len(sim.p.xPred) != n || len(sim.p.v) != n || len(sim.p.neighbors) != n {
		t.Error("particle arrays do not all share length N")
	}
	if sim.RestDensity() <= 0 {
		t.Error("rest density must be positive")
	}
}
