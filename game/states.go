package game

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/engine/fsm"
)

// Game states
const (
	StatePlaying fsm.StateID = iota + 1
	StateGameOver
)

// Triggers
const (
	TriggerReset fsm.Trigger = iota + 1
	TriggerQuit
	TriggerPlayerDied
)

// newMachine wires GameOver <-> Playing. Run setup happens on entering Playing,
// teardown on leaving it, so Init into GameOver has no side effects
func newMachine() *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()

	m.AddState(StateGameOver, "GameOver")
	m.AddState(StatePlaying, "Playing").
		Enter((*Game).startRun).
		Exit((*Game).endRun)

	m.AddTransition(StateGameOver, fsm.Transition[*Game]{Trigger: TriggerReset, TargetID: StatePlaying})
	m.AddTransition(StatePlaying, fsm.Transition[*Game]{Trigger: TriggerQuit, TargetID: StateGameOver})
	m.AddTransition(StatePlaying, fsm.Transition[*Game]{Trigger: TriggerPlayerDied, TargetID: StateGameOver})

	return m
}

func (g *Game) startRun() {
	g.player = components.DefaultPlayer(constants.GridWidth, constants.GridHeight)
	g.enemies.Clear()
	g.score = 0
	g.diedLast = false
	g.rng.SeedFrom(uint64(g.tickCount))
	g.surface.ClearScreen()

	g.push(engine.EventGameStarted, nil)
	g.log.WithField("tick", g.tickCount).Info("run started")
}

func (g *Game) endRun() {
	g.surface.ClearScreen()

	g.push(engine.EventGameEnded, &engine.GameEndedPayload{Score: g.score, Killed: g.diedLast})
	g.log.WithFields(logrus.Fields{
		"tick":   g.tickCount,
		"score":  g.score,
		"killed": g.diedLast,
	}).Info("run ended")
}
