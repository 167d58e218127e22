package constants

import "time"

// Grid dimensions, matching an 80x25 text-mode screen
const (
	GridWidth  = 80
	GridHeight = 25
)

// Game Loop Timing Constants
const (
	// TickInterval is the default wall-clock interval between simulation ticks
	TickInterval = 100 * time.Millisecond

	// NewEnemyFreq is the number of ticks between enemy spawns
	NewEnemyFreq = 100

	// InitialSeed seeds the RNG before the first restart reseeds it from the tick counter
	InitialSeed = 3
)

// Scoring and regeneration
const (
	// KillScore is awarded per enemy death
	KillScore = 100

	// RegenPerStep is healed on every accepted, non-attack move
	RegenPerStep = 1
)

// Control keys
const (
	KeyReset = 'r'
	KeyQuit  = '`'
)

// Glyphs
const (
	WallGlyph = '#'
)

// MaxSpawnAttempts bounds coordinate redraws when a spawn lands on a wall
const MaxSpawnAttempts = 16
