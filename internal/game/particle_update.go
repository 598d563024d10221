package game

import "github.com/joonazan/vec2"

var gravity = vec2.Vector{Y: ParticleGravity}

// Update advances every particle by one simulation tick and drops the expired.
func (ps *ParticleSystem) Update() {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Pos.Add(p.Vel)
		p.Vel.Add(gravity)
		p.Life -= ParticleDecay

		if p.Dead() {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}
