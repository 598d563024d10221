package game

import (
	"fmt"
	"time"
)

// Grid layout (in cells and screen pixels).
const (
	GridCount  = 20
	CellSize   = 20
	CanvasSize = GridCount * CellSize // 400
)

// Simulation timing.
const (
	DefaultTick = 150 * time.Millisecond
	MinTick     = 20 * time.Millisecond
	MaxTick     = 2 * time.Second

	// maxCatchUpSteps bounds how many steps one long frame may run.
	maxCatchUpSteps = 4
)

// Particles.
const (
	MaxParticles      = 1024
	DefaultBurstCount = 20
	MaxBurstCount     = 200
	ParticleGravity   = 0.1
	ParticleDecay     = 0.02
	ParticleMaxSpeed  = 2.0
	ParticleMinSize   = 2.0
	ParticleMaxSize   = 6.0
	ParticleStartLife = 1.0
)

// Config holds the tunables a Session is built from.
type Config struct {
	Tick       time.Duration
	BurstCount int
	Seed       uint64
}

func DefaultConfig() Config {
	return Config{
		Tick:       DefaultTick,
		BurstCount: DefaultBurstCount,
		Seed:       uint64(time.Now().UnixNano()),
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.Tick < MinTick || c.Tick > MaxTick {
		return fmt.Errorf("tick %v outside [%v, %v]", c.Tick, MinTick, MaxTick)
	}
	if c.BurstCount < 0 || c.BurstCount > MaxBurstCount {
		return fmt.Errorf("burst count %d outside [0, %d]", c.BurstCount, MaxBurstCount)
	}
	return nil
}
