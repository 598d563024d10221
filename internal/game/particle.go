package game

import "github.com/joonazan/vec2"

// Particle is a decorative spark in screen pixel space.
type Particle struct {
	Pos  vec2.Vector
	Vel  vec2.Vector
	Life float64 // 1 at spawn, removed at <= 0
	Size float64
	Col  RGB
}

func (p Particle) Dead() bool { return p.Life <= 0 }

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Snapshot copies the live particles.
func (ps *ParticleSystem) Snapshot() []Particle {
	out := make([]Particle, len(ps.P))
	copy(out, ps.P)
	return out
}
