// Package audio plays short synthesized effects in response to game events
package audio

import "github.com/lixenwraith/not-rogue/engine"

// Sound identifies one effect
type Sound int

const (
	SoundNone Sound = iota
	SoundStart
	SoundHit
	SoundKill
	SoundDeath
	SoundSpawn
)

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundHit:
		return "hit"
	case SoundKill:
		return "kill"
	case SoundDeath:
		return "death"
	case SoundSpawn:
		return "spawn"
	}
	return "none"
}

// SoundFor maps a game event to its effect. Quitting is silent
func SoundFor(ev engine.GameEvent) Sound {
	switch ev.Type {
	case engine.EventGameStarted:
		return SoundStart
	case engine.EventCombat:
		return SoundHit
	case engine.EventEnemyKilled:
		return SoundKill
	case engine.EventEnemySpawned:
		return SoundSpawn
	case engine.EventGameEnded:
		if p, ok := ev.Payload.(*engine.GameEndedPayload); ok && p.Killed {
			return SoundDeath
		}
	}
	return SoundNone
}
