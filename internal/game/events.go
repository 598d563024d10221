package game

type EventType int

const (
	EventStarted EventType = iota
	EventFoodEaten
	EventNewBest
	EventCollided
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventFoodEaten:
		return "food_eaten"
	case EventNewBest:
		return "new_best"
	case EventCollided:
		return "collided"
	}
	return "unknown"
}

// CollisionCause says what ended a round.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseWall
	CauseSelf
)

func (c CollisionCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "none"
}

// Event is emitted by Step and by session lifecycle changes.
type Event struct {
	Type  EventType
	Pos   Position // cell of the eaten food or the blocked head target
	X, Y  float64  // pixel centre of Pos
	Score int
	Best  int
	Cause CollisionCause
	Round string
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
