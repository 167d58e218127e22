package engine

import (
	"fmt"

	"github.com/lixenwraith/not-rogue/components"
)

// EnemyRegistry is a fixed-capacity arena of enemy slots.
// Slot indices carry no spatial meaning. Freed slots go on a LIFO free list
// so the most recently vacated slot is reused first; fresh slots come from a cursor.
type EnemyRegistry struct {
	slots  []*components.Entity
	free   []int
	cursor int
	nextID uint64
	count  int
}

// NewEnemyRegistry creates an empty registry with capacity slots
func NewEnemyRegistry(capacity int) *EnemyRegistry {
	return &EnemyRegistry{
		slots:  make([]*components.Entity, capacity),
		free:   make([]int, 0, capacity),
		nextID: 1,
	}
}

// Cap returns the fixed slot count
func (r *EnemyRegistry) Cap() int {
	return len(r.slots)
}

// Len returns the number of occupied slots
func (r *EnemyRegistry) Len() int {
	return r.count
}

// Full reports whether Insert would fail
func (r *EnemyRegistry) Full() bool {
	return len(r.free) == 0 && r.cursor >= len(r.slots)
}

// Get returns the enemy in slot, nil if empty. Panics on an invalid slot
func (r *EnemyRegistry) Get(slot int) *components.Entity {
	r.mustBeValid(slot)
	return r.slots[slot]
}

// Insert stores a copy of e with a fresh ID.
// Returns the slot used and false if the registry is full
func (r *EnemyRegistry) Insert(e components.Entity) (int, bool) {
	var slot int
	switch {
	case len(r.free) > 0:
		slot = r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
	case r.cursor < len(r.slots):
		slot = r.cursor
		r.cursor++
	default:
		return -1, false
	}

	e.ID = r.nextID
	r.nextID++
	r.slots[slot] = &e
	r.count++
	return slot, true
}

// Remove empties slot and makes it the preferred slot for the next Insert
func (r *EnemyRegistry) Remove(slot int) {
	r.mustBeValid(slot)
	if r.slots[slot] == nil {
		return
	}
	r.slots[slot] = nil
	r.free = append(r.free, slot)
	r.count--
}

// FindByID returns the slot holding the enemy with id
func (r *EnemyRegistry) FindByID(id uint64) (int, bool) {
	for slot, e := range r.slots {
		if e != nil && e.ID == id {
			return slot, true
		}
	}
	return -1, false
}

// Each calls fn for every occupied slot in slot order
func (r *EnemyRegistry) Each(fn func(slot int, e *components.Entity)) {
	for slot, e := range r.slots {
		if e != nil {
			fn(slot, e)
		}
	}
}

// LastFreed returns the slot the next Insert will reuse, if any
func (r *EnemyRegistry) LastFreed() (int, bool) {
	if len(r.free) == 0 {
		return -1, false
	}
	return r.free[len(r.free)-1], true
}

// Cursor returns the next never-used slot
func (r *EnemyRegistry) Cursor() int {
	return r.cursor
}

// Clear empties every slot and resets the free list and cursor. IDs keep increasing
func (r *EnemyRegistry) Clear() {
	clear(r.slots)
	r.free = r.free[:0]
	r.cursor = 0
	r.count = 0
}

func (r *EnemyRegistry) mustBeValid(slot int) {
	if slot < 0 || slot >= len(r.slots) {
		panic(fmt.Sprintf("registry: slot %d outside capacity %d", slot, len(r.slots)))
	}
}
