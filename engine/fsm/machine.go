package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters initialID, running its entry actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	for id, n := range m.nodes {
		for _, t := range n.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %d (%s) transitions to missing state %d", id, n.Name, t.TargetID)
			}
		}
	}

	m.activeStateID = initialID
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Fire takes the active state's first transition for trig.
// Returns false if the active state does not handle trig
func (m *Machine[T]) Fire(ctx T, trig Trigger) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Trigger == trig {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition runs exit actions of the current node then entry actions of the target.
// Self-transitions re-run both.
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range current.OnExit {
			action(ctx)
		}
	}

	// Switch before entry actions so they observe the new state
	m.activeStateID = targetID

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Active returns the active StateID
func (m *Machine[T]) Active() StateID {
	return m.activeStateID
}

// ActiveName returns the active state's name
func (m *Machine[T]) ActiveName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}
