package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/engine"
)

// eventLogger traces every routed event at debug level
type eventLogger struct {
	log logrus.FieldLogger
}

func newEventLogger(log logrus.FieldLogger) *eventLogger {
	return &eventLogger{log: log.WithField("component", "events")}
}

func (l *eventLogger) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventGameStarted,
		engine.EventGameEnded,
		engine.EventPlayerMoved,
		engine.EventCombat,
		engine.EventEnemyKilled,
		engine.EventEnemySpawned,
	}
}

func (l *eventLogger) HandleEvent(ev engine.GameEvent) {
	fields := logrus.Fields{"tick": ev.Tick}

	switch p := ev.Payload.(type) {
	case *engine.GameEndedPayload:
		fields["score"] = p.Score
		fields["killed"] = p.Killed
	case *engine.PlayerMovedPayload:
		fields["x"] = p.X
		fields["y"] = p.Y
	case *engine.CombatPayload:
		fields["enemy"] = string(p.Enemy.Glyph)
		fields["enemy_hp"] = p.Enemy.CurrentHealth
		fields["player_hp"] = p.Player.CurrentHealth
	case *engine.EnemyKilledPayload:
		fields["slot"] = p.Slot
		fields["score"] = p.Score
	case *engine.EnemySpawnedPayload:
		fields["slot"] = p.Slot
		fields["archetype"] = p.Archetype.String()
	}

	l.log.WithFields(fields).Debug(ev.Type.String())
}
