package pbf

// Simulator owns all particle and grid state for a single PBF scene. See
// package doc for the lifecycle and the exported method set.
type Simulator struct {
	p     *particles
	grid  *spatialHash
	scene SceneParams

	sceneID      int
	sceneChanged bool

	tunables    Tunables
	h           float64 // smoothing length = tunables.Radius * tunables.Ratio
	restDensity float64
}

// New constructs a simulator with default tunables and no particles yet.
// Call ResetSystem before the first SimulateTimestep.
func New() *Simulator {
	return &Simulator{
		sceneID:      0,
		sceneChanged: true,
		tunables:     DefaultTunables(),
	}
}

// NewWithTunables is New but with caller-supplied tunables (radius,
// solver iterations, relaxation, etc).
func NewWithTunables(t Tunables) *Simulator {
	s := New()
	s.tunables = t
	return s
}

// ResetSystem reloads the scene geometry when SceneChanged is set, resets
// slide-wall state, and rebuilds the particle lattice via setupScene.
func (s *Simulator) ResetSystem() error {
	if s.sceneChanged {
		sc, err := predefinedScene(s.sceneID)
		if err != nil {
			return err
		}
		sc.SlidePos = 1.0
		sc.SlideVel = 1.0
		sc.SlideDir = -1
		s.scene = sc
	}
	return s.setupScene()
}

// SimulateTimestep advances the simulation by dt seconds:
//
//  1. In scene 1, advance and reflect the slide wall.
//  2. Integrate (semi-implicit Euler), clamp collisions, rebuild the
//     spatial hash, and search neighbors.
//  3. Run SolverIterations rounds of Jacobi constraint projection.
//  4. Update velocities from position change and commit.
//
// This phase order is strict: collisions clamp the predicted position
// once before the neighbor search runs (detectNeighbor) and again after
// every solver iteration's delta-x is applied (constraintSolve), so
// neighbor lists are always built from in-bounds positions and no solver
// correction can push a particle back out of the tank unnoticed.
func (s *Simulator) SimulateTimestep(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveDt
	}
	if s.restDensity <= 0 {
		return ErrZeroRestDensity
	}

	if s.sceneID == 1 {
		s.advanceSlideWall(dt)
	}

	s.integrate(dt)
	s.detectNeighbor()

	for i := 0; i < s.tunables.SolverIterations; i++ {
		s.constraintSolve()
	}

	s.velocityUpdate(dt)
	return nil
}

// advanceSlideWall moves the interior wall along X, reflecting at the
// [0.5, 1.0] bounds.
func (s *Simulator) advanceSlideWall(dt float64) {
	sc := &s.scene
	sc.SlidePos += sc.SlideDir * sc.SlideVel * dt
	if sc.SlidePos > 1.0 {
		sc.SlideDir = -1
		sc.SlidePos = 2.0 - sc.SlidePos
	} else if sc.SlidePos < 0.5 {
		sc.SlideDir = 1
		sc.SlidePos = 1.0 - sc.SlidePos
	}
}

// integrate applies gravity and advances predicted position by velocity.
func (s *Simulator) integrate(dt float64) {
	g := s.tunables.Gravity
	for i := range s.p.v {
		s.p.v[i] = s.p.v[i].Add(g.Scale(dt))
		s.p.xPred[i] = s.p.xPred[i].Add(s.p.v[i].Scale(dt))
	}
}

// velocityUpdate recovers velocity from the committed position change and
// commits the predicted position.
func (s *Simulator) velocityUpdate(dt float64) {
	damping := s.tunables.Damping
	for i := range s.p.x {
		s.p.v[i] = s.p.xPred[i].Sub(s.p.x[i]).Scale(damping / dt)
		s.p.x[i] = s.p.xPred[i]
	}
}

// Positions returns a read-only view of the committed particle positions.
func (s *Simulator) Positions() []Vec3 { return s.p.x }

// Velocities returns a read-only view of particle velocities, used by
// metrics and diagnostics rather than the core interface proper.
func (s *Simulator) Velocities() []Vec3 { return s.p.v }

func (s *Simulator) NumParticles() int { return s.p.n() }
func (s *Simulator) Radius() float64   { return s.tunables.Radius }
func (s *Simulator) Tank() Vec3        { return s.scene.Tank }
func (s *Simulator) SlidePos() float64 { return s.scene.SlidePos }
func (s *Simulator) SceneID() int      { return s.sceneID }

// SetSceneID requests a scene switch; it takes effect on the next
// ResetSystem, matching the reference simulator's scene_changed flag.
func (s *Simulator) SetSceneID(id int) {
	if id != s.sceneID {
		s.sceneChanged = true
	}
	s.sceneID = id
}

func (s *Simulator) SetSceneChanged(changed bool) { s.sceneChanged = changed }
func (s *Simulator) SceneChanged() bool           { return s.sceneChanged }

// RestDensity exposes the computed rest density, read-only, mostly for tests.
func (s *Simulator) RestDensity() float64 { return s.restDensity }

// SmoothingLength exposes h = Radius * Ratio, read-only.
func (s *Simulator) SmoothingLength() float64 { return s.h }
