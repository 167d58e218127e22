// Package game owns the simulation state and advances it on key and tick input
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/core"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/engine/fsm"
	"github.com/lixenwraith/not-rogue/rng"
)

var (
	ErrNoSurface         = errors.New("game: surface is required")
	ErrInvalidSpawnEvery = errors.New("game: spawn interval must be positive")
	ErrInvalidObstacles  = errors.New("game: obstacle count must not be negative")
)

// Config holds the collaborators and tunables for New
type Config struct {
	// Surface receives all drawing; required
	Surface core.Surface

	// Logger defaults to a discarding logger
	Logger logrus.FieldLogger

	// Router receives game events; a private router is created if nil
	Router *engine.Router

	// Seed for the RNG until the first restart reseeds it from the tick counter
	Seed uint64

	// SpawnEvery is the tick interval between spawns, 0 selects the default
	SpawnEvery int

	// Obstacles scatters this many extra wall cells at construction
	Obstacles int

	// Layout overrides the wall map, empty selects DefaultLayout
	Layout string
}

// Game is the single owner of all simulation state. It is not safe for concurrent use;
// the driver serializes Key and Tick.
type Game struct {
	surface core.Surface
	log     logrus.FieldLogger
	router  *engine.Router
	machine *fsm.Machine[*Game]

	player     components.Entity
	tickCount  int64
	rng        *rng.FastRand
	enemies    *engine.EnemyRegistry
	walls      *engine.Map
	score      int
	spawnEvery int64

	// diedLast records why the last run ended, read by the Playing exit action
	diedLast bool
}

// New builds a game in the GameOver state showing the title screen
func New(cfg *Config) (*Game, error) {
	if cfg == nil || cfg.Surface == nil {
		return nil, ErrNoSurface
	}
	if cfg.SpawnEvery < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpawnEvery, cfg.SpawnEvery)
	}
	if cfg.Obstacles < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidObstacles, cfg.Obstacles)
	}

	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	router := cfg.Router
	if router == nil {
		router = engine.NewRouter()
	}

	spawnEvery := cfg.SpawnEvery
	if spawnEvery == 0 {
		spawnEvery = constants.NewEnemyFreq
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = constants.InitialSeed
	}

	layout := cfg.Layout
	if layout == "" {
		layout = engine.DefaultLayout
	}

	g := &Game{
		surface:    cfg.Surface,
		log:        log.WithField("component", "game"),
		router:     router,
		player:     components.DefaultPlayer(constants.GridWidth, constants.GridHeight),
		rng:        rng.NewFastRand(seed),
		enemies:    engine.NewEnemyRegistry(constants.GridWidth),
		walls:      engine.NewMap(constants.GridWidth, constants.GridHeight, layout, core.ColorWall),
		spawnEvery: int64(spawnEvery),
	}

	g.scatterObstacles(cfg.Obstacles)

	g.machine = newMachine()
	if err := g.machine.Init(g, StateGameOver); err != nil {
		return nil, fmt.Errorf("game: state machine: %w", err)
	}

	g.log.WithFields(logrus.Fields{
		"seed":        seed,
		"spawn_every": spawnEvery,
		"obstacles":   cfg.Obstacles,
	}).Info("game created")

	return g, nil
}

// scatterObstacles adds n random wall cells, keeping the player's start cell free
func (g *Game) scatterObstacles(n int) {
	start := components.DefaultPlayer(constants.GridWidth, constants.GridHeight)
	for i := 0; i < n; i++ {
		row, col := g.walls.AddRandom(g.rng)
		if row == start.Y && col == start.X {
			g.walls.Remove(row, col)
		}
	}
}

// State returns the active state
func (g *Game) State() fsm.StateID {
	return g.machine.Active()
}

// StateName returns the active state's name for display and logs
func (g *Game) StateName() string {
	return g.machine.ActiveName()
}

// GameOver reports whether the game is waiting on the title screen
func (g *Game) GameOver() bool {
	return g.machine.Active() == StateGameOver
}

// Score returns the current, or on the title screen the previous, run's score
func (g *Game) Score() int {
	return g.score
}

// TickCount returns the number of ticks since creation; never reset
func (g *Game) TickCount() int64 {
	return g.tickCount
}

// Player returns a copy of the player
func (g *Game) Player() components.Entity {
	return g.player
}

// Enemies exposes the registry for inspection
func (g *Game) Enemies() *engine.EnemyRegistry {
	return g.enemies
}

// Walls exposes the wall map for inspection
func (g *Game) Walls() *engine.Map {
	return g.walls
}

// Router returns the router events are pushed to
func (g *Game) Router() *engine.Router {
	return g.router
}

func (g *Game) push(t engine.EventType, payload any) {
	g.router.Push(engine.GameEvent{Type: t, Tick: g.tickCount, Payload: payload})
}
