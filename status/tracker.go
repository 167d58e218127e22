package status

import (
	"sync/atomic"

	"github.com/lixenwraith/not-rogue/engine"
)

// Metric keys written by Tracker
const (
	KeyRuns        = "runs"
	KeyDeaths      = "deaths"
	KeyQuits       = "quits"
	KeyMoves       = "moves"
	KeyHits        = "hits"
	KeyKills       = "kills"
	KeySpawns      = "spawns"
	KeyDamageDealt = "damage_dealt"
	KeyDamageTaken = "damage_taken"
	KeyBestScore   = "best_score"
	KeyLastScore   = "last_score"
	KeyInRun       = "in_run"
)

// Tracker tallies routed game events into a Registry
type Tracker struct {
	registry *Registry

	runs, deaths, quits        *atomic.Int64
	moves, hits, kills, spawns *atomic.Int64
	dealt, taken               *atomic.Int64
	best, last                 *atomic.Int64
	inRun                      *atomic.Bool
}

// NewTracker registers the run metrics in reg and caches their pointers
func NewTracker(reg *Registry) *Tracker {
	return &Tracker{
		registry: reg,
		runs:     reg.Ints.Get(KeyRuns),
		deaths:   reg.Ints.Get(KeyDeaths),
		quits:    reg.Ints.Get(KeyQuits),
		moves:    reg.Ints.Get(KeyMoves),
		hits:     reg.Ints.Get(KeyHits),
		kills:    reg.Ints.Get(KeyKills),
		spawns:   reg.Ints.Get(KeySpawns),
		dealt:    reg.Ints.Get(KeyDamageDealt),
		taken:    reg.Ints.Get(KeyDamageTaken),
		best:     reg.Ints.Get(KeyBestScore),
		last:     reg.Ints.Get(KeyLastScore),
		inRun:    reg.Bools.Get(KeyInRun),
	}
}

// Registry returns the registry the tracker writes to
func (t *Tracker) Registry() *Registry {
	return t.registry
}

// EventTypes implements engine.Handler
func (t *Tracker) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventGameStarted,
		engine.EventGameEnded,
		engine.EventPlayerMoved,
		engine.EventCombat,
		engine.EventEnemyKilled,
		engine.EventEnemySpawned,
	}
}

// HandleEvent implements engine.Handler
func (t *Tracker) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventGameStarted:
		t.runs.Add(1)
		t.inRun.Store(true)

	case engine.EventGameEnded:
		t.inRun.Store(false)
		p, ok := ev.Payload.(*engine.GameEndedPayload)
		if !ok {
			return
		}
		if p.Killed {
			t.deaths.Add(1)
		} else {
			t.quits.Add(1)
		}
		t.last.Store(int64(p.Score))
		t.raiseBest(int64(p.Score))

	case engine.EventPlayerMoved:
		t.moves.Add(1)

	case engine.EventCombat:
		t.hits.Add(1)
		if p, ok := ev.Payload.(*engine.CombatPayload); ok {
			t.dealt.Add(int64(p.EnemyDamage))
			t.taken.Add(int64(p.PlayerDamage))
		}

	case engine.EventEnemyKilled:
		t.kills.Add(1)
		if p, ok := ev.Payload.(*engine.EnemyKilledPayload); ok {
			t.raiseBest(int64(p.Score))
		}

	case engine.EventEnemySpawned:
		t.spawns.Add(1)
	}
}

func (t *Tracker) raiseBest(score int64) {
	for {
		cur := t.best.Load()
		if score <= cur || t.best.CompareAndSwap(cur, score) {
			return
		}
	}
}
