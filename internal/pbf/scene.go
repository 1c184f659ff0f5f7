package pbf

import "math"

// SceneParams describes the tank geometry and fill ratio for a scene,
// plus the moving-wall state that only scene 1 animates.
type SceneParams struct {
	Tank     Vec3 // axis-aligned box half-extents * 2
	RelWater Vec3 // fraction of tank initially filled
	Offset   Vec3 // positioning factor for the water block inside the tank

	SlidePos float64 // normalized right-wall position along X, in [0.5, 1.0]
	SlideVel float64
	SlideDir float64 // +1 or -1
}

// predefinedScene returns the tank/water/offset geometry for a built-in
// scene id. Scene 0 is a static dam-break tank; scene 1 adds a moving
// interior wall along X.
func predefinedScene(sceneID int) (SceneParams, error) {
	switch sceneID {
	case 0:
		return SceneParams{
			Tank:     Vec3{0.8, 1.5, 0.8},
			RelWater: Vec3{0.2, 0.2, 0.2},
			Offset:   Vec3{0.5, 1.0, 0.7},
		}, nil
	case 1:
		return SceneParams{
			Tank:     Vec3{2.0, 1.0, 0.5},
			RelWater: Vec3{0.3, 0.3, 0.3},
			Offset:   Vec3{0.0, 0.0, 0.5},
		}, nil
	default:
		return SceneParams{}, &SceneError{SceneID: sceneID, Wrapped: ErrUnknownScene}
	}
}

// setupScene lays particles on a staggered close-packed lattice filling
// RelWater*Tank, sizes the particle and grid arrays, and computes the
// rest density.
func (s *Simulator) setupScene() error {
	sc := &s.scene
	t := s.tunables

	base := sc.Tank.Scale(-0.5).Add(
		sc.Offset.Mul(Vec3{1, 1, 1}.Sub(sc.RelWater)).Mul(sc.Tank),
	)

	dx := 2.0 * t.Radius
	dz := dx
	dy := math.Sqrt(3.0) / 2.0 * dx

	nx := int(math.Floor(sc.RelWater.X * sc.Tank.X / dx))
	ny := int(math.Floor(sc.RelWater.Y * sc.Tank.Y / dy))
	nz := int(math.Floor(sc.RelWater.Z * sc.Tank.Z / dz))
	n := nx * ny * nz

	s.h = t.Radius * t.Ratio
	if s.h <= 0 {
		return ErrZeroRestDensity
	}

	s.grid = newSpatialHash(sc.Tank, s.h)
	s.p = newParticles(n)

	const factor = invPi * 315.0 * 5.0 * 5.0 * 5.0 / (64.0 * 9.0 * 9.0 * 9.0)
	s.restDensity = factor * t.Num / (s.h * s.h * s.h)
	if s.restDensity <= 0 {
		return ErrZeroRestDensity
	}

	idx := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				stagger := 0.0
				if j%2 == 1 {
					stagger = t.Radius
				}
				s.p.x[idx] = Vec3{
					X: t.Radius + dx*float64(i) + stagger,
					Y: t.Radius + dy*float64(j),
					Z: t.Radius + dz*float64(k) + stagger,
				}.Add(base)
				idx++
			}
		}
	}

	copy(s.p.xPred, s.p.x)
	return nil
}
