package game

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/core"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/render"
	"github.com/lixenwraith/not-rogue/systems"
)

// Tick advances one simulation step. The tick counter always advances;
// enemies move and spawn only while playing
func (g *Game) Tick() {
	g.tickCount++

	switch g.machine.Active() {
	case StatePlaying:
		g.stepEnemies()
		if g.tickCount%g.spawnEvery == 0 {
			g.spawn()
		}
		g.draw()
	case StateGameOver:
		g.drawTitle()
	}

	g.router.DispatchAll()
}

func (g *Game) stepEnemies() {
	for _, m := range systems.StepEnemies(g.enemies, g.walls, g.rng) {
		g.surface.Clear(m.FromX, m.FromY)
	}
}

func (g *Game) spawn() {
	s, ok := systems.Spawn(g.enemies, g.walls, g.rng)
	if !ok {
		g.log.WithFields(logrus.Fields{
			"tick":    g.tickCount,
			"enemies": g.enemies.Len(),
		}).Debug("spawn skipped")
		return
	}

	g.push(engine.EventEnemySpawned, &engine.EnemySpawnedPayload{
		Enemy:     *s.Enemy,
		Slot:      s.Slot,
		Archetype: s.Archetype,
	})
	g.log.WithFields(logrus.Fields{
		"tick":      g.tickCount,
		"slot":      s.Slot,
		"archetype": s.Archetype.String(),
		"x":         s.Enemy.X,
		"y":         s.Enemy.Y,
	}).Debug("enemy spawned")
}

// draw renders walls, player, HUD, then enemies on top
func (g *Game) draw() {
	g.walls.Draw(g.surface, constants.WallGlyph)
	g.player.Draw(g.surface)

	hud := func(label string, labelCol, value, valueCol int) {
		render.PlotStr(g.surface, label, labelCol, constants.HUDRow, core.ColorHUD, core.ColorBlack)
		render.PlotNum(g.surface, value, valueCol, constants.HUDRow, core.ColorHUD, core.ColorBlack)
	}
	hud(constants.HPLabel, constants.HPLabelCol, g.player.CurrentHealth, constants.HPValueCol)
	hud(constants.AttackLabel, constants.AttackLabelCol, g.player.Damage, constants.AttackValueCol)
	hud(constants.DefenseLabel, constants.DefenseLabelCol, g.player.Defense, constants.DefenseValueCol)

	g.enemies.Each(func(_ int, e *components.Entity) {
		e.Draw(g.surface)
	})
}

// drawTitle renders the title, key help and previous score
func (g *Game) drawTitle() {
	midCol := constants.GridWidth / 2
	midRow := constants.GridHeight / 2

	render.PlotStr(g.surface, constants.TitleText, midCol-constants.TitleColOffset, constants.TitleRow,
		core.ColorLightBlue, core.ColorBlack)
	render.PlotStr(g.surface, constants.HelpText, midCol-constants.HelpColOffset, constants.HelpRow,
		core.ColorLightBlue, core.ColorBlack)
	render.PlotStr(g.surface, constants.PrevScoreText, midCol-constants.TitleColOffset, midRow+constants.ScoreRowOffset,
		core.ColorLightGreen, core.ColorBlack)
	render.PlotNum(g.surface, g.score, midCol-constants.ScoreNumOffset, midRow+constants.ScoreRowOffset+constants.ScoreNumRowDiff,
		core.ColorLightGreen, core.ColorBlack)
}
