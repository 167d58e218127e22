package components

import "github.com/lixenwraith/not-rogue/core"

// Archetype selects an enemy stat template
type Archetype int

const (
	ArchetypeSkeleton  Archetype = 1
	ArchetypeWerewolf  Archetype = 2
	ArchetypeArcher    Archetype = 3
	ArchetypePorcupine Archetype = 4

	// ArchetypeCount is the number of spawnable archetypes, numbered 1..ArchetypeCount
	ArchetypeCount = 4
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeSkeleton:
		return "skeleton"
	case ArchetypeWerewolf:
		return "werewolf"
	case ArchetypeArcher:
		return "archer"
	case ArchetypePorcupine:
		return "porcupine"
	}
	return "fallback"
}

// Player defaults
const (
	PlayerGlyph       = 'A'
	PlayerMaxHealth   = 10
	PlayerDamage      = 2
	PlayerDefense     = 0
	PlayerAttackRange = 1
	PlayerAttackWidth = 1

	FallbackGlyph = 'a'
)

// DefaultPlayer returns the player stat block centered on a width x height grid
func DefaultPlayer(width, height int) Entity {
	return NewEntity(PlayerGlyph, width/2, height/2,
		PlayerMaxHealth, PlayerDamage, PlayerDefense, PlayerAttackRange, PlayerAttackWidth,
		core.ColorFriendly)
}

// GenerateStats builds an enemy of archetype a at (x, y).
// Unknown archetypes get the player's stats with glyph 'a'.
func GenerateStats(a Archetype, x, y int) Entity {
	switch a {
	case ArchetypeSkeleton:
		return NewEntity('S', x, y, 7, 2, 1, 2, 1, core.ColorHostile)
	case ArchetypeWerewolf:
		return NewEntity('W', x, y, 15, 4, 0, 1, 1, core.ColorHostile)
	case ArchetypeArcher:
		return NewEntity('B', x, y, 7, 3, 1, 3, 1, core.ColorHostile)
	case ArchetypePorcupine:
		return NewEntity('P', x, y, 10, 1, 2, 1, 3, core.ColorHostile)
	}
	return NewEntity(FallbackGlyph, x, y,
		PlayerMaxHealth, PlayerDamage, PlayerDefense, PlayerAttackRange, PlayerAttackWidth,
		core.ColorHostile)
}
