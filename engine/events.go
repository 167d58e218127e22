package engine

import "github.com/lixenwraith/not-rogue/components"

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted signals a reset into play
	// Payload: nil
	EventGameStarted EventType = iota

	// EventGameEnded signals the transition to game over, by quit or death
	// Payload: *GameEndedPayload
	EventGameEnded

	// EventPlayerMoved signals an accepted, non-attack step
	// Payload: *PlayerMovedPayload
	EventPlayerMoved

	// EventCombat signals one damage exchange between player and enemy
	// Payload: *CombatPayload
	EventCombat

	// EventEnemyKilled signals an enemy death and its slot release
	// Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventEnemySpawned signals a new enemy in the registry
	// Payload: *EnemySpawnedPayload
	EventEnemySpawned
)

func (t EventType) String() string {
	switch t {
	case EventGameStarted:
		return "game_started"
	case EventGameEnded:
		return "game_ended"
	case EventPlayerMoved:
		return "player_moved"
	case EventCombat:
		return "combat"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemySpawned:
		return "enemy_spawned"
	}
	return "unknown"
}

// GameEvent is a single routed event stamped with the tick it happened on
type GameEvent struct {
	Type    EventType
	Tick    int64
	Payload any
}

// GameEndedPayload carries the final score
type GameEndedPayload struct {
	Score  int
	Killed bool // True if the player died, false on quit
}

// PlayerMovedPayload carries the new position
type PlayerMovedPayload struct {
	X, Y int
}

// CombatPayload carries both sides after the exchange
type CombatPayload struct {
	Player       components.Entity
	Enemy        components.Entity
	EnemyDamage  int
	PlayerDamage int
}

// EnemyKilledPayload carries the dead enemy and the freed slot
type EnemyKilledPayload struct {
	Enemy components.Entity
	Slot  int
	Score int
}

// EnemySpawnedPayload carries the new enemy and its slot
type EnemySpawnedPayload struct {
	Enemy     components.Entity
	Slot      int
	Archetype components.Archetype
}

// Handler processes routed events.
// Systems implement this interface to receive events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router queues events during a handler and dispatches them afterwards
//
// Architecture:
//   - Single-threaded: Push and DispatchAll run on the game goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order, events in FIFO order
type Router struct {
	handlers map[EventType][]Handler
	pending  []GameEvent
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		pending:  make([]GameEvent, 0, 16),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Push queues an event for the next DispatchAll
func (r *Router) Push(event GameEvent) {
	r.pending = append(r.pending, event)
}

// DispatchAll consumes all pending events and routes them to handlers.
// Events pushed by handlers during dispatch are delivered in the same call
func (r *Router) DispatchAll() {
	for i := 0; i < len(r.pending); i++ {
		ev := r.pending[i]
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	clear(r.pending)
	r.pending = r.pending[:0]
}
