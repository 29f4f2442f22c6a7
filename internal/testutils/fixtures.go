package testutils

import (
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
)

// IntPtr returns a pointer to v, for optional integer fields.
func IntPtr(v int) *int { return &v }

// BaseCharacter returns a complete single-character skeleton: all six
// ability scores set, calculated HP mode, XP leveling, no classes yet.
func BaseCharacter(id, playerID string) *entities.Character {
	return &entities.Character{
		ID:       id,
		PlayerID: playerID,
		Name:     "Tester",
		RaceSlug: "human",
		AbilityScores: entities.AbilityScores{
			Strength:     IntPtr(10),
			Dexterity:    IntPtr(14),
			Constitution: IntPtr(16),
			Intelligence: IntPtr(16),
			Wisdom:       IntPtr(12),
			Charisma:     IntPtr(8),
		},
		HPMode:       entities.HPModeCalculated,
		LevelingMode: entities.LevelingXP,
	}
}

// Fighter returns a fighter of the given level with the limited-use
// features a leveled fighter would hold, all uses full.
func Fighter(id, playerID string, level int) *entities.Character {
	c := BaseCharacter(id, playerID)
	c.Classes = []*entities.ClassLevel{
		{ClassSlug: "fighter", Level: level, Primary: true, Order: 0},
	}
	// Fighter 1 with CON 16 (+1 human, mod +3): 10+3, then 9 per level.
	c.MaxHP = 13 + 9*(level-1)
	c.CurrentHP = c.MaxHP
	c.Features = []*entities.FeatureGrant{
		{
			FeatureSlug:   "second-wind",
			ClassSlug:     "fighter",
			LevelAcquired: 1,
			MaxUses:       IntPtr(1),
			UsesRemaining: 1,
			ResetsOn:      "short_rest",
		},
	}
	if level >= 2 {
		c.Features = append(c.Features, &entities.FeatureGrant{
			FeatureSlug:   "action-surge",
			ClassSlug:     "fighter",
			LevelAcquired: 2,
			MaxUses:       IntPtr(1),
			UsesRemaining: 1,
			ResetsOn:      "short_rest",
		})
	}
	return c
}

// Rogue returns a rogue of the given level with the four skill
// proficiencies a first-level rogue picks.
func Rogue(id, playerID string, level int) *entities.Character {
	c := BaseCharacter(id, playerID)
	c.Classes = []*entities.ClassLevel{
		{ClassSlug: "rogue", Level: level, Primary: true, Order: 0},
	}
	// Rogue 1 with CON 16 (+1 human, mod +3): 8+3, then 8 per level.
	c.MaxHP = 11 + 8*(level-1)
	c.CurrentHP = c.MaxHP
	c.Skills = []string{"stealth", "perception", "sleight-of-hand", "athletics"}
	return c
}

// Wizard returns a wizard of the given level with spell slot pools at
// the single-class table maxima, all unspent.
func Wizard(id, playerID string, level int) *entities.Character {
	c := BaseCharacter(id, playerID)
	c.Classes = []*entities.ClassLevel{
		{ClassSlug: "wizard", Level: level, Primary: true, Order: 0},
	}
	c.MaxHP = 9 + 7*(level-1)
	c.CurrentHP = c.MaxHP
	c.Slots = wizardSlots(level)
	return c
}

// Warlock returns a warlock of the given level with pact magic pools.
func Warlock(id, playerID string, level int) *entities.Character {
	c := BaseCharacter(id, playerID)
	c.Classes = []*entities.ClassLevel{
		{ClassSlug: "warlock", Level: level, Primary: true, Order: 0},
	}
	c.MaxHP = 11 + 8*(level-1)
	c.CurrentHP = c.MaxHP
	slotLevel := (level + 1) / 2
	if slotLevel > 5 {
		slotLevel = 5
	}
	count := 2
	if level == 1 {
		count = 1
	}
	c.Slots = []*entities.SpellSlotPool{
		{Type: entities.SlotTypePact, Level: slotLevel, Max: count, Used: 0},
	}
	return c
}

func wizardSlots(level int) []*entities.SpellSlotPool {
	rows := map[int][]int{
		1: {2},
		2: {3},
		3: {4, 2},
		4: {4, 3},
		5: {4, 3, 2},
	}
	row, ok := rows[level]
	if !ok {
		row = rows[5]
	}
	slots := make([]*entities.SpellSlotPool, 0, len(row))
	for i, max := range row {
		slots = append(slots, &entities.SpellSlotPool{
			Type:  entities.SlotTypeSpell,
			Level: i + 1,
			Max:   max,
		})
	}
	return slots
}
