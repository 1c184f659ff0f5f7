package pbf

// handleCollisions clamps every predicted position into the tank, plus
// the moving slide wall along X when present. Clamping only touches
// position; velocity is recovered from position change in velocityUpdate.
func (s *Simulator) handleCollisions() {
	t := s.tunables
	tank := s.scene.Tank
	r := t.Radius

	xLo := -0.5*tank.X + r
	xHi := 0.5*tank.X*s.scene.SlidePos - r
	yLo := -0.5*tank.Y + r
	yHi := 0.5*tank.Y - r
	zLo := -0.5*tank.Z + r
	zHi := 0.5*tank.Z - r

	for i := range s.p.xPred {
		p := &s.p.xPred[i]
		if p.X < xLo {
			p.X = xLo
		} else if p.X > xHi {
			p.X = xHi
		}
		if p.Y < yLo {
			p.Y = yLo
		} else if p.Y > yHi {
			p.Y = yHi
		}
		if p.Z < zLo {
			p.Z = zLo
		} else if p.Z > zHi {
			p.Z = zHi
		}
	}
}
