package game

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/input"
	"github.com/lixenwraith/not-rogue/systems"
)

// Key applies one input. Control keys only act in the state they leave;
// movement only acts while playing
func (g *Game) Key(k input.Key) {
	action := input.Decode(k)

	switch {
	case action == input.ActionReset:
		g.machine.Fire(g, TriggerReset)
	case action == input.ActionQuit:
		g.diedLast = false
		g.machine.Fire(g, TriggerQuit)
	case action.IsMovement():
		if g.machine.Active() == StatePlaying {
			g.movePlayer(action.Direction())
		}
	}

	g.router.DispatchAll()
}

// movePlayer either attacks or steps, never both
func (g *Game) movePlayer(dir components.Direction) {
	future := g.player
	future.Step(dir)

	if slot, ok := systems.FindAttackTarget(&g.player, &future, g.enemies); ok {
		g.attack(slot)
		return
	}

	if future.IsColliding(g.walls) {
		return
	}

	g.surface.Clear(g.player.X, g.player.Y)
	g.player.X, g.player.Y = future.X, future.Y
	g.player.Heal(constants.RegenPerStep)

	g.push(engine.EventPlayerMoved, &engine.PlayerMovedPayload{X: g.player.X, Y: g.player.Y})
}

func (g *Game) attack(slot int) {
	enemy := g.enemies.Get(slot)
	out := systems.Resolve(&g.player, enemy)

	g.push(engine.EventCombat, &engine.CombatPayload{
		Player:       g.player,
		Enemy:        *enemy,
		EnemyDamage:  out.EnemyDamage,
		PlayerDamage: out.PlayerDamage,
	})
	g.log.WithFields(logrus.Fields{
		"tick":          g.tickCount,
		"slot":          slot,
		"enemy":         string(enemy.Glyph),
		"enemy_hp":      enemy.CurrentHealth,
		"player_hp":     g.player.CurrentHealth,
		"enemy_damage":  out.EnemyDamage,
		"player_damage": out.PlayerDamage,
	}).Debug("combat")

	if out.EnemyDied {
		dead := *enemy
		g.score += constants.KillScore
		g.surface.Clear(dead.X, dead.Y)
		g.enemies.Remove(slot)

		g.push(engine.EventEnemyKilled, &engine.EnemyKilledPayload{Enemy: dead, Slot: slot, Score: g.score})
		g.log.WithFields(logrus.Fields{
			"slot":  slot,
			"id":    dead.ID,
			"score": g.score,
		}).Info("enemy killed")
	}

	if out.PlayerDied {
		g.diedLast = true
		g.machine.Fire(g, TriggerPlayerDied)
	}
}
