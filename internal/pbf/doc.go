// Package pbf implements a position-based fluids (PBF) simulator.
//
// A [Simulator] steps a population of spherical particles under gravity
// and a density-incompressibility constraint, collides them against an
// axis-aligned tank that may contain a moving interior wall, and exposes
// particle positions for an external renderer to poll once per frame:
//
//	sim := pbf.New()
//	sim.ResetSystem()
//	for frame := 0; frame < n; frame++ {
//	    sim.SimulateTimestep(1.0 / 200)
//	    draw(sim.Positions())
//	}
//
// # Pipeline
//
// Each [Simulator.SimulateTimestep] call runs, in order: slide-wall
// advance, semi-implicit Euler integration, collision clamp, spatial-hash
// rebuild, neighbor search, [Tunables.SolverIterations] rounds of Jacobi
// constraint projection, and velocity update. See [Simulator.SimulateTimestep]
// for the exact phase order; it is load-bearing.
//
// # Thread safety
//
// A Simulator is NOT safe for concurrent use. SimulateTimestep runs
// several phases in parallel internally (see package compute) but is
// itself synchronous: it returns only once the step has fully committed.
// Callers must not read Positions() while a step is in flight.
package pbf
