package systems

import (
	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/rng"
)

// Spawned describes an enemy placed by Spawn
type Spawned struct {
	Slot      int
	Archetype components.Archetype
	Enemy     *components.Entity
}

// Spawn places one enemy of a random archetype on a free interior cell.
// The registry picks the slot: most recently freed first, else the next fresh one.
// Returns false without drawing from src when the registry is full, or when
// every one of MaxSpawnAttempts coordinate draws lands on a wall.
func Spawn(reg *engine.EnemyRegistry, walls *engine.Map, src *rng.FastRand) (Spawned, bool) {
	if reg.Full() {
		return Spawned{}, false
	}

	archetype := components.Archetype(1 + src.Intn(components.ArchetypeCount))

	for attempt := 0; attempt < constants.MaxSpawnAttempts; attempt++ {
		x := 1 + src.Intn(walls.Width()-2)
		y := 1 + src.Intn(walls.Height()-2)
		if walls.Occupied(y, x) {
			continue
		}

		slot, ok := reg.Insert(components.GenerateStats(archetype, x, y))
		if !ok {
			return Spawned{}, false
		}
		return Spawned{
			Slot:      slot,
			Archetype: archetype,
			Enemy:     reg.Get(slot),
		}, true
	}

	return Spawned{}, false
}
