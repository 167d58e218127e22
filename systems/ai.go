package systems

import (
	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/rng"
)

// Move records a committed enemy step
type Move struct {
	Slot  int
	ID    uint64
	FromX int
	FromY int
	Dir   components.Direction
}

// RandomDirection draws 1..4 and maps it to up, down, right, left
func RandomDirection(src *rng.FastRand) components.Direction {
	switch 1 + src.Intn(4) {
	case 1:
		return components.DirUp
	case 2:
		return components.DirDown
	case 3:
		return components.DirRight
	default:
		return components.DirLeft
	}
}

// StepEnemies random-walks every enemy one cell, in slot order.
// A step into a wall is dropped; enemies may share cells with each other and the player.
// One direction is drawn per occupied slot whether or not the step commits.
func StepEnemies(reg *engine.EnemyRegistry, walls components.Occupancy, src *rng.FastRand) []Move {
	var moves []Move

	reg.Each(func(slot int, e *components.Entity) {
		dir := RandomDirection(src)

		future := *e
		future.Step(dir)
		if future.IsColliding(walls) {
			return
		}

		moves = append(moves, Move{
			Slot:  slot,
			ID:    e.ID,
			FromX: e.X,
			FromY: e.Y,
			Dir:   dir,
		})
		e.X, e.Y = future.X, future.Y
	})

	return moves
}
