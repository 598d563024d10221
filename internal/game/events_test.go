package game

import "testing"

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var eaten, all []EventType
	bus.Subscribe(EventFoodEaten, func(e Event) { eaten = append(eaten, e.Type) })
	for _, typ := range []EventType{EventStarted, EventFoodEaten, EventCollided} {
		bus.Subscribe(typ, func(e Event) { all = append(all, e.Type) })
	}

	bus.Emit(Event{Type: EventStarted})
	bus.Emit(Event{Type: EventFoodEaten})
	bus.Emit(Event{Type: EventCollided})

	if len(eaten) != 1 {
		t.Errorf("Expected 1 food event, got %d", len(eaten))
	}
	if len(all) != 3 || all[0] != EventStarted || all[2] != EventCollided {
		t.Errorf("Unexpected dispatch order %v", all)
	}
}

func TestEventTypeString(t *testing.T) {
	for typ, want := range map[EventType]string{
		EventStarted:   "started",
		EventFoodEaten: "food_eaten",
		EventNewBest:   "new_best",
		EventCollided:  "collided",
		EventType(99):  "unknown",
	} {
		if got := typ.String(); got != want {
			t.Errorf("%d: expected %q, got %q", typ, want, got)
		}
	}
}
