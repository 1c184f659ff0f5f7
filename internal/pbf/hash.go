package pbf

import "math"

// spatialHash is a uniform-grid bucket index over predicted particle
// positions, rebuilt once per time step.
type spatialHash struct {
	tank       Vec3
	h          float64
	cx, cy, cz int
	cellStart  []int // length M+1; cellStart[M] == N
	hashed     []int // length N; particles in bucket order
}

func newSpatialHash(tank Vec3, h float64) *spatialHash {
	cx := int(math.Ceil(tank.X/h)) + 2
	cy := int(math.Ceil(tank.Y/h)) + 2
	cz := int(math.Ceil(tank.Z/h)) + 2
	m := cx * cy * cz
	return &spatialHash{
		tank:      tank,
		h:         h,
		cx:        cx,
		cy:        cy,
		cz:        cz,
		cellStart: make([]int, m+1),
	}
}

func (g *spatialHash) numCells() int { return g.cx * g.cy * g.cz }

// cellCoord maps a predicted position to its (padded) grid coordinate.
// The +1 padding means a boundary particle (already clamped by
// handleCollisions) can never land in cell 0 or cell C-1 along any axis,
// so every 3x3x3 lookup in detectNeighbor stays within bounds.
func (g *spatialHash) cellCoord(pos Vec3) (int, int, int) {
	gx := int(math.Floor((pos.X+0.5*g.tank.X)/g.h)) + 1
	gy := int(math.Floor((pos.Y+0.5*g.tank.Y)/g.h)) + 1
	gz := int(math.Floor((pos.Z+0.5*g.tank.Z)/g.h)) + 1
	return gx, gy, gz
}

func (g *spatialHash) cellID(gx, gy, gz int) int {
	return gx*g.cy*g.cz + gy*g.cz + gz
}

// build runs the standard two-pass counting-sort build: count occupants
// per cell, prefix-sum into cellStart, then scatter particle indices into
// hashed. Afterward cellStart again points at each bucket's first element.
func (g *spatialHash) build(xPred []Vec3) {
	n := len(xPred)
	if len(g.hashed) != n {
		g.hashed = make([]int, n)
	}
	for i := range g.cellStart {
		g.cellStart[i] = 0
	}

	ids := make([]int, n)
	for i, pos := range xPred {
		gx, gy, gz := g.cellCoord(pos)
		id := g.cellID(gx, gy, gz)
		ids[i] = id
		g.cellStart[id]++
	}

	sum := 0
	for c := 0; c < g.numCells(); c++ {
		sum += g.cellStart[c]
		g.cellStart[c] = sum
	}
	g.cellStart[g.numCells()] = sum

	for i := 0; i < n; i++ {
		id := ids[i]
		g.cellStart[id]--
		g.hashed[g.cellStart[id]] = i
	}
}
