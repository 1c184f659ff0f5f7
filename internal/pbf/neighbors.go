package pbf

import "github.com/san-kum/pbf/internal/compute"

// detectNeighbor clamps positions, rebuilds the spatial hash, then builds
// each particle's neighbor list from the 27 surrounding cells. Neighbor
// lists are captured once per time step and reused across every solver
// iteration; rebuilding them mid-solve would be wasted work since the
// grid cell a particle belongs to rarely changes within one step.
func (s *Simulator) detectNeighbor() {
	s.handleCollisions()
	s.grid.build(s.p.xPred)

	h2 := s.h * s.h
	g := s.grid

	compute.For(s.p.n(), func(i int) {
		nb := s.p.neighbors[i][:0]
		pos := s.p.xPred[i]
		gx, gy, gz := g.cellCoord(pos)

		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					id := g.cellID(gx+dx, gy+dy, gz+dz)
					start, end := g.cellStart[id], g.cellStart[id+1]
					for k := start; k < end; k++ {
						j := g.hashed[k]
						if j == i {
							continue
						}
						d := pos.Sub(s.p.xPred[j])
						if d.LengthSquared() < h2 {
							nb = append(nb, j)
						}
					}
				}
			}
		}
		s.p.neighbors[i] = nb
	})
}
