package components

import (
	"testing"

	"github.com/lixenwraith/not-rogue/core"
)

func TestGenerateStatsTable(t *testing.T) {
	tests := []struct {
		archetype                                      Archetype
		glyph                                          rune
		maxHealth, damage, defense, rangeCells, widthC int
	}{
		{ArchetypeSkeleton, 'S', 7, 2, 1, 2, 1},
		{ArchetypeWerewolf, 'W', 15, 4, 0, 1, 1},
		{ArchetypeArcher, 'B', 7, 3, 1, 3, 1},
		{ArchetypePorcupine, 'P', 10, 1, 2, 1, 3},
		{Archetype(0), 'a', 10, 2, 0, 1, 1},
		{Archetype(9), 'a', 10, 2, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.archetype.String(), func(t *testing.T) {
			e := GenerateStats(tt.archetype, 12, 9)
			if e.Glyph != tt.glyph {
				t.Errorf("glyph = %q, want %q", e.Glyph, tt.glyph)
			}
			if e.X != 12 || e.Y != 9 {
				t.Errorf("position = (%d,%d), want (12,9)", e.X, e.Y)
			}
			if e.MaxHealth != tt.maxHealth || e.CurrentHealth != tt.maxHealth {
				t.Errorf("health = %d/%d, want %d/%d", e.CurrentHealth, e.MaxHealth, tt.maxHealth, tt.maxHealth)
			}
			if e.Damage != tt.damage || e.Defense != tt.defense {
				t.Errorf("damage/defense = %d/%d, want %d/%d", e.Damage, e.Defense, tt.damage, tt.defense)
			}
			if e.AttackRange != tt.rangeCells || e.AttackWidth != tt.widthC {
				t.Errorf("range/width = %d/%d, want %d/%d", e.AttackRange, e.AttackWidth, tt.rangeCells, tt.widthC)
			}
			if e.Color != core.ColorHostile {
				t.Errorf("enemy color = %v, want hostile", e.Color)
			}
			if e.Weapon != nil || e.Armor != nil {
				t.Error("enemies spawn without items")
			}
		})
	}
}

func TestDefaultPlayer(t *testing.T) {
	p := DefaultPlayer(80, 25)

	if p.Glyph != 'A' {
		t.Errorf("glyph = %q, want 'A'", p.Glyph)
	}
	if p.X != 40 || p.Y != 12 {
		t.Errorf("position = (%d,%d), want centered (40,12)", p.X, p.Y)
	}
	if p.MaxHealth != 10 || p.CurrentHealth != 10 || p.Damage != 2 || p.Defense != 0 {
		t.Errorf("unexpected stats: %+v", p)
	}
	if p.AttackRange != 1 || p.AttackWidth != 1 {
		t.Errorf("range/width = %d/%d, want 1/1", p.AttackRange, p.AttackWidth)
	}
	if p.Color != core.ColorFriendly {
		t.Errorf("color = %v, want friendly", p.Color)
	}
	if p.ID != 0 {
		t.Errorf("player ID = %d, want 0", p.ID)
	}
}
