package pbf

import "github.com/san-kum/pbf/internal/compute"

// density returns rho[i] = sum of Poly6 over i's neighbors, at the
// current predicted positions.
func (s *Simulator) density(i int) float64 {
	pos := s.p.xPred[i]
	rho := 0.0
	for _, j := range s.p.neighbors[i] {
		rho += poly6(pos.Sub(s.p.xPred[j]), s.h)
	}
	return rho
}

// gradConstraint returns the gradient of particle i's density constraint
// with respect to particle k's position: the self term (k == i) sums the
// Spiky gradient over all neighbors, the neighbor term (k in neighbors[i])
// is the negated single-pair gradient.
func (s *Simulator) gradConstraint(i, k int) Vec3 {
	if k == i {
		var sum Vec3
		pos := s.p.xPred[i]
		for _, j := range s.p.neighbors[i] {
			sum = sum.Add(spikyGrad(pos.Sub(s.p.xPred[j]), s.h))
		}
		return sum.Scale(1.0 / s.restDensity)
	}
	r := s.p.xPred[i].Sub(s.p.xPred[k])
	return spikyGrad(r, s.h).Scale(-1.0 / s.restDensity)
}

// constraintSolve runs one Jacobi iteration: lambda from the state at
// iteration start, delta-x from that lambda, then a serial apply-and-clamp.
// Jacobi (every particle reads the same snapshot) instead of Gauss-Seidel
// (reading neighbors already updated this pass) keeps the per-particle work
// embarrassingly parallel across compute.For, at the cost of slightly slower
// convergence per iteration.
func (s *Simulator) constraintSolve() {
	n := s.p.n()
	lambda := make([]float64, n)
	deltaX := make([]Vec3, n)

	compute.For(n, func(i int) {
		c := s.density(i)/s.restDensity - 1.0
		denom := s.gradConstraint(i, i).LengthSquared()
		for _, j := range s.p.neighbors[i] {
			denom += s.gradConstraint(i, j).LengthSquared()
		}
		denom += s.tunables.Relaxation
		lambda[i] = -c / denom
	})

	w0 := poly6(Vec3{X: 0.3 * s.h}, s.h)
	k := s.tunables.ArtificialK
	nExp := s.tunables.ArtificialN

	compute.For(n, func(i int) {
		pos := s.p.xPred[i]
		var dx Vec3
		for _, j := range s.p.neighbors[i] {
			if j == i {
				// defensive: detectNeighbor never adds self, but the
				// reference implementation guards this too.
				continue
			}
			r := pos.Sub(s.p.xPred[j])
			sCorr := -k * ipow(poly6(r, s.h)/w0, nExp)
			dx = dx.Add(spikyGrad(r, s.h).Scale(lambda[i] + lambda[j] + sCorr))
		}
		deltaX[i] = dx.Scale(1.0 / s.restDensity)
	})

	for i := 0; i < n; i++ {
		s.p.xPred[i] = s.p.xPred[i].Add(deltaX[i])
	}
	s.handleCollisions()
}

func ipow(base float64, exp int) float64 {
	r := 1.0
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
