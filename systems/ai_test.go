package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/core"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/rng"
)

func defaultWalls() *engine.Map {
	return engine.NewMap(constants.GridWidth, constants.GridHeight, engine.DefaultLayout, core.ColorWall)
}

func TestRandomDirectionCoversAll(t *testing.T) {
	src := rng.NewFastRand(7)
	seen := make(map[components.Direction]int)
	for i := 0; i < 400; i++ {
		seen[RandomDirection(src)]++
	}
	assert.Len(t, seen, 4)
	assert.Zero(t, seen[components.DirNone])
}

func TestStepEnemiesSingleStep(t *testing.T) {
	walls := defaultWalls()
	reg := engine.NewEnemyRegistry(constants.GridWidth)
	for i := 0; i < 10; i++ {
		reg.Insert(components.GenerateStats(components.ArchetypeSkeleton, 10+i*5, 12))
	}
	src := rng.NewFastRand(42)

	for tick := 0; tick < 50; tick++ {
		before := make(map[int][2]int)
		reg.Each(func(slot int, e *components.Entity) {
			before[slot] = [2]int{e.X, e.Y}
		})

		moves := StepEnemies(reg, walls, src)

		moved := make(map[int]bool)
		for _, m := range moves {
			moved[m.Slot] = true
			e := reg.Get(m.Slot)
			require.NotNil(t, e)
			dx, dy := m.Dir.Delta()
			assert.Equal(t, before[m.Slot], [2]int{m.FromX, m.FromY})
			assert.Equal(t, m.FromX+dx, e.X)
			assert.Equal(t, m.FromY+dy, e.Y)
			assert.False(t, walls.Occupied(e.Y, e.X))
		}
		reg.Each(func(slot int, e *components.Entity) {
			if !moved[slot] {
				assert.Equal(t, before[slot], [2]int{e.X, e.Y}, "blocked enemy should stay put")
			}
		})
		assert.Equal(t, constants.GridWidth, reg.Cap())
	}
}

func TestStepEnemiesBoxedIn(t *testing.T) {
	walls := engine.NewMap(3, 3, "###\n# #\n###", core.ColorWall)
	reg := engine.NewEnemyRegistry(2)
	reg.Insert(components.GenerateStats(components.ArchetypeWerewolf, 1, 1))
	src := rng.NewFastRand(1)

	for i := 0; i < 20; i++ {
		assert.Empty(t, StepEnemies(reg, walls, src))
	}
	e := reg.Get(0)
	assert.Equal(t, 1, e.X)
	assert.Equal(t, 1, e.Y)
}

func TestStepEnemiesDeterministic(t *testing.T) {
	run := func() []Move {
		walls := defaultWalls()
		reg := engine.NewEnemyRegistry(4)
		reg.Insert(components.GenerateStats(components.ArchetypeSkeleton, 5, 5))
		reg.Insert(components.GenerateStats(components.ArchetypeArcher, 5, 5))
		src := rng.NewFastRand(99)
		var all []Move
		for i := 0; i < 10; i++ {
			all = append(all, StepEnemies(reg, walls, src)...)
		}
		return all
	}
	assert.Equal(t, run(), run())
}
