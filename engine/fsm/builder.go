package fsm

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node; unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Enter appends an entry action
func (n *Node[T]) Enter(fn ActionFunc[T]) *Node[T] {
	n.OnEnter = append(n.OnEnter, fn)
	return n
}

// Exit appends an exit action
func (n *Node[T]) Exit(fn ActionFunc[T]) *Node[T] {
	n.OnExit = append(n.OnExit, fn)
	return n
}
