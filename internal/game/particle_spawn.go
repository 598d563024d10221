package game

import "github.com/joonazan/vec2"

// SpawnBurst emits n sparks at pixel position (x, y).
func (ps *ParticleSystem) SpawnBurst(x, y float64, n int) {
	r := ps.rng
	for i := 0; i < n; i++ {
		ps.Add(Particle{
			Pos: vec2.Vector{X: x, Y: y},
			Vel: vec2.Vector{
				X: r.RangeF(-ParticleMaxSpeed, ParticleMaxSpeed),
				Y: r.RangeF(-ParticleMaxSpeed, ParticleMaxSpeed),
			},
			Life: ParticleStartLife,
			Size: r.RangeF(ParticleMinSize, ParticleMaxSize),
			Col:  ParticleColors[r.Intn(len(ParticleColors))],
		})
	}
}
