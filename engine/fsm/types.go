package fsm

// StateID is a unique identifier for a node
type StateID int

// Trigger names an external stimulus that may cause a transition
type Trigger int

// Machine is a flat finite state machine.
// T is the context type passed to actions (e.g., *game.Game)
type Machine[T any] struct {
	// Graph Data (immutable after build)
	nodes map[StateID]*Node[T]

	// Runtime State
	activeStateID StateID
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition links a trigger on the source node to a target state
type Transition[T any] struct {
	Trigger  Trigger
	TargetID StateID
}

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
