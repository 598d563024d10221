package game

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Pilot chooses a direction for the next step; used for the demo autopilot.
type Pilot interface {
	Next(w World) (Direction, bool)
}

// Session drives one player's games: it owns the world, the clock,
// the input buffer and the particles, and publishes step events on its bus.
type Session struct {
	cfg       Config
	world     World
	input     *InputMapper
	clock     *Clock
	particles *ParticleSystem
	bus       *EventBus
	foodRand  Intner
	pilot     Pilot
	round     string
}

// NewSession builds a session in PhaseNotStarted with the given persisted best.
func NewSession(cfg Config, best int) *Session {
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	foodRand := NewFoodRand(cfg.Seed)
	s := &Session{
		cfg:       cfg,
		world:     NewWorld(best, foodRand),
		input:     NewInputMapper(Right),
		clock:     NewClock(cfg.Tick),
		particles: NewParticleSystem(MaxParticles, cfg.Seed^0xBEAD),
		bus:       NewEventBus(),
		foodRand:  foodRand,
	}
	s.bus.Subscribe(EventFoodEaten, func(e Event) {
		s.particles.SpawnBurst(e.X, e.Y, s.cfg.BurstCount)
	})
	return s
}

func (s *Session) Bus() *EventBus      { return s.bus }
func (s *Session) Input() *InputMapper { return s.input }
func (s *Session) Clock() *Clock       { return s.clock }
func (s *Session) World() World        { return s.world }
func (s *Session) Phase() Phase        { return s.world.Phase }
func (s *Session) Round() string       { return s.round }
func (s *Session) SetPilot(p Pilot)    { s.pilot = p }

func (s *Session) Particles() *ParticleSystem {
	return s.particles
}

// Start begins a new round from PhaseNotStarted or PhaseGameOver.
// It is a no-op while a round is running.
func (s *Session) Start() {
	if s.world.Phase == PhaseRunning {
		return
	}
	s.world = s.world.Restart(s.foodRand)
	s.input.Reset(s.world.Dir)
	s.particles.Clear()
	s.round = uuid.NewString()
	s.clock.Start()
	log.Printf("round %s started (best %d)", s.round, s.world.Best)
	s.bus.Emit(Event{Type: EventStarted, Best: s.world.Best, Round: s.round})
}

// HandleKey applies one key press. Before the first round any arrow key
// or Confirm starts a game; after game over only Confirm restarts. The
// starting key is consumed.
func (s *Session) HandleKey(k Key) {
	switch s.world.Phase {
	case PhaseNotStarted:
		if k != KeyNone {
			s.Start()
		}
	case PhaseGameOver:
		if k == KeyConfirm {
			s.Start()
		}
	case PhaseRunning:
		if d, ok := k.Direction(); ok {
			s.input.Request(d)
		}
	}
}

// Update feeds elapsed wall time to the clock and runs the steps that are due.
// It returns how many steps ran.
func (s *Session) Update(dt time.Duration) int {
	n := s.clock.Advance(dt)
	for i := 0; i < n; i++ {
		if s.world.Phase != PhaseRunning {
			return i
		}
		s.tick()
	}
	return n
}

func (s *Session) tick() {
	if s.pilot != nil {
		if d, ok := s.pilot.Next(s.world); ok {
			s.input.Request(d)
		}
	}
	w := s.world
	w.Next = s.input.Pending()
	next, events := Step(w, s.foodRand)
	s.world = next
	s.input.Commit(next.Dir)

	for _, e := range events {
		e.Round = s.round
		switch e.Type {
		case EventCollided:
			s.clock.Stop()
			log.Printf("round %s over: score %d, hit %s at (%d,%d)", s.round, e.Score, e.Cause, e.Pos.X, e.Pos.Y)
		case EventNewBest:
			log.Printf("round %s new best %d", s.round, e.Best)
		}
		s.bus.Emit(e)
	}
	if next.Phase == PhaseRunning {
		s.particles.Update()
	}
}

// Snapshot copies the current state for a renderer.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:     s.world.Phase,
		Snake:     s.world.Snake.Clone(),
		Dir:       s.world.Dir,
		Food:      s.world.Food,
		Score:     s.world.Score,
		Best:      s.world.Best,
		Tick:      s.world.Tick,
		Cause:     s.world.Cause,
		Round:     s.round,
		Particles: s.particles.Snapshot(),
	}
}
