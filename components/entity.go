package components

import "github.com/lixenwraith/not-rogue/core"

// Direction is one of the four grid moves
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the column and row offset of d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Occupancy answers wall queries for collision checks
type Occupancy interface {
	InBounds(row, col int) bool
	Occupied(row, col int) bool
}

// Item is a stat-delta record for weapons and armor.
// Nothing equips or applies items yet; the shape is reserved.
type Item struct {
	Glyph             rune
	HealthChange      int
	DamageChange      int
	DefenseChange     int
	AttackRangeChange int
	AttackWidthChange int
}

// Entity is the stat block shared by the player and enemies
type Entity struct {
	// ID is assigned by the enemy registry at spawn; the player is 0
	ID uint64

	Glyph rune
	X, Y  int

	MaxHealth     int
	CurrentHealth int // Goes to zero or below on death
	Damage        int
	Defense       int
	AttackRange   int
	AttackWidth   int // Reserved for multi-cell attacks, unused in range checks

	Weapon *Item
	Armor  *Item

	Color core.Color
}

// NewEntity creates an entity at full health
func NewEntity(glyph rune, x, y, maxHealth, damage, defense, attackRange, attackWidth int, color core.Color) Entity {
	return Entity{
		Glyph:         glyph,
		X:             x,
		Y:             y,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		Damage:        damage,
		Defense:       defense,
		AttackRange:   attackRange,
		AttackWidth:   attackWidth,
		Color:         color,
	}
}

// Movement primitives do not bounds-check: callers move a copy, validate with IsColliding, then commit

func (e *Entity) Up()    { e.Y-- }
func (e *Entity) Down()  { e.Y++ }
func (e *Entity) Left()  { e.X-- }
func (e *Entity) Right() { e.X++ }

// Step moves one cell in d
func (e *Entity) Step(d Direction) {
	dx, dy := d.Delta()
	e.X += dx
	e.Y += dy
}

// IsColliding reports whether the entity's cell is a wall or outside the grid
func (e *Entity) IsColliding(walls Occupancy) bool {
	if !walls.InBounds(e.Y, e.X) {
		return true
	}
	return walls.Occupied(e.Y, e.X)
}

// SamePosition reports positional equality
func (e *Entity) SamePosition(other *Entity) bool {
	return e.X == other.X && e.Y == other.Y
}

// Heal raises current health by n, capped at max health
func (e *Entity) Heal(n int) {
	if e.CurrentHealth >= e.MaxHealth {
		return
	}
	e.CurrentHealth = min(e.CurrentHealth+n, e.MaxHealth)
}

// Alive reports whether health is above zero
func (e *Entity) Alive() bool {
	return e.CurrentHealth > 0
}

// Draw plots the glyph in the entity's color on black
func (e *Entity) Draw(s core.Surface) {
	s.Plot(e.Glyph, e.X, e.Y, e.Color, core.ColorBlack)
}
