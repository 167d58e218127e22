package systems

import (
	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/engine"
)

// Outcome reports one simultaneous exchange between the player and an enemy
type Outcome struct {
	EnemyDamage  int
	PlayerDamage int
	EnemyDied    bool
	PlayerDied   bool
}

// Damage returns the health attacker removes from defender, clamped at zero
func Damage(attacker, defender *components.Entity) int {
	return max(0, attacker.Damage-defender.Defense)
}

// Resolve applies damage to both sides in the same call. Neither entity can gain health
func Resolve(player, enemy *components.Entity) Outcome {
	enemyDamage := Damage(player, enemy)
	playerDamage := Damage(enemy, player)

	enemy.CurrentHealth -= enemyDamage
	player.CurrentHealth -= playerDamage

	return Outcome{
		EnemyDamage:  enemyDamage,
		PlayerDamage: playerDamage,
		EnemyDied:    !enemy.Alive(),
		PlayerDied:   !player.Alive(),
	}
}

// FindAttackTarget returns the first slot whose enemy sits exactly AttackRange away from
// player on a shared row or column, with future strictly closer to it along that axis.
// Reach is the player's own AttackRange; the enemy's range plays no part.
func FindAttackTarget(player, future *components.Entity, reg *engine.EnemyRegistry) (int, bool) {
	reach := player.AttackRange

	for slot := 0; slot < reg.Cap(); slot++ {
		e := reg.Get(slot)
		if e == nil {
			continue
		}

		if e.Y == player.Y && abs(player.X-e.X) == reach {
			if abs(future.X-e.X) < abs(player.X-e.X) {
				return slot, true
			}
		}

		if e.X == player.X && abs(player.Y-e.Y) == reach {
			if abs(future.Y-e.Y) < abs(player.Y-e.Y) {
				return slot, true
			}
		}
	}

	return -1, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
