package engine

import "testing"

type recordingHandler struct {
	types []EventType
	got   []GameEvent
	onEv  func(GameEvent)
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	h.got = append(h.got, ev)
	if h.onEv != nil {
		h.onEv(ev)
	}
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchesByType(t *testing.T) {
	r := NewRouter()
	kills := &recordingHandler{types: []EventType{EventEnemyKilled}}
	all := &recordingHandler{types: []EventType{EventEnemyKilled, EventCombat}}
	r.Register(kills)
	r.Register(all)

	r.Push(GameEvent{Type: EventCombat, Tick: 1})
	r.Push(GameEvent{Type: EventEnemyKilled, Tick: 2})
	r.Push(GameEvent{Type: EventEnemySpawned, Tick: 3})

	r.DispatchAll()

	if len(kills.got) != 1 || kills.got[0].Tick != 2 {
		t.Errorf("kill handler got %+v", kills.got)
	}
	if len(all.got) != 2 || all.got[0].Type != EventCombat || all.got[1].Type != EventEnemyKilled {
		t.Errorf("combined handler got %+v", all.got)
	}

	// The queue is drained: a second dispatch delivers nothing
	r.DispatchAll()
	if len(kills.got) != 1 || len(all.got) != 2 {
		t.Errorf("redelivered events: kills=%d all=%d", len(kills.got), len(all.got))
	}
}

func TestRouterDeliversEventsPushedDuringDispatch(t *testing.T) {
	r := NewRouter()
	follow := &recordingHandler{types: []EventType{EventGameEnded}}
	trigger := &recordingHandler{types: []EventType{EventCombat}}
	trigger.onEv = func(GameEvent) {
		r.Push(GameEvent{Type: EventGameEnded})
	}
	r.Register(trigger)
	r.Register(follow)

	r.Push(GameEvent{Type: EventCombat})
	r.DispatchAll()

	if len(follow.got) != 1 {
		t.Errorf("follow-up event delivered %d times, want 1", len(follow.got))
	}
}
