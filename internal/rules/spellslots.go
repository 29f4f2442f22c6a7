package rules

import "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"

// fullCasterSlots[level] is the standard spell slot row for a full
// caster at that level, indexed 1..20; each row holds slot counts for
// spell levels 1..9. This same table serves multiclass lookup at the
// combined effective caster level.
var fullCasterSlots = map[int][9]int{
	1:  {2, 0, 0, 0, 0, 0, 0, 0, 0},
	2:  {3, 0, 0, 0, 0, 0, 0, 0, 0},
	3:  {4, 2, 0, 0, 0, 0, 0, 0, 0},
	4:  {4, 3, 0, 0, 0, 0, 0, 0, 0},
	5:  {4, 3, 2, 0, 0, 0, 0, 0, 0},
	6:  {4, 3, 3, 0, 0, 0, 0, 0, 0},
	7:  {4, 3, 3, 1, 0, 0, 0, 0, 0},
	8:  {4, 3, 3, 2, 0, 0, 0, 0, 0},
	9:  {4, 3, 3, 3, 1, 0, 0, 0, 0},
	10: {4, 3, 3, 3, 2, 0, 0, 0, 0},
	11: {4, 3, 3, 3, 2, 1, 0, 0, 0},
	12: {4, 3, 3, 3, 2, 1, 0, 0, 0},
	13: {4, 3, 3, 3, 2, 1, 1, 0, 0},
	14: {4, 3, 3, 3, 2, 1, 1, 0, 0},
	15: {4, 3, 3, 3, 2, 1, 1, 1, 0},
	16: {4, 3, 3, 3, 2, 1, 1, 1, 0},
	17: {4, 3, 3, 3, 2, 1, 1, 1, 1},
	18: {4, 3, 3, 3, 3, 1, 1, 1, 1},
	19: {4, 3, 3, 3, 3, 2, 1, 1, 1},
	20: {4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// halfCasterSlots[level] is the single-class slot row for half casters
// (paladin, ranger), who get no slots before class level 2.
var halfCasterSlots = map[int][9]int{
	2:  {2, 0, 0, 0, 0, 0, 0, 0, 0},
	3:  {3, 0, 0, 0, 0, 0, 0, 0, 0},
	4:  {3, 0, 0, 0, 0, 0, 0, 0, 0},
	5:  {4, 2, 0, 0, 0, 0, 0, 0, 0},
	6:  {4, 2, 0, 0, 0, 0, 0, 0, 0},
	7:  {4, 3, 0, 0, 0, 0, 0, 0, 0},
	8:  {4, 3, 0, 0, 0, 0, 0, 0, 0},
	9:  {4, 3, 2, 0, 0, 0, 0, 0, 0},
	10: {4, 3, 2, 0, 0, 0, 0, 0, 0},
	11: {4, 3, 3, 0, 0, 0, 0, 0, 0},
	12: {4, 3, 3, 0, 0, 0, 0, 0, 0},
	13: {4, 3, 3, 1, 0, 0, 0, 0, 0},
	14: {4, 3, 3, 1, 0, 0, 0, 0, 0},
	15: {4, 3, 3, 2, 0, 0, 0, 0, 0},
	16: {4, 3, 3, 2, 0, 0, 0, 0, 0},
	17: {4, 3, 3, 3, 1, 0, 0, 0, 0},
	18: {4, 3, 3, 3, 1, 0, 0, 0, 0},
	19: {4, 3, 3, 3, 2, 0, 0, 0, 0},
	20: {4, 3, 3, 3, 2, 0, 0, 0, 0},
}

// PactSlots describes warlock pact magic at a class level: Count slots,
// all of spell level Level.
type PactSlots struct {
	Level int
	Count int
}

var pactSlots = map[int]PactSlots{
	1:  {Level: 1, Count: 1},
	2:  {Level: 1, Count: 2},
	3:  {Level: 2, Count: 2},
	4:  {Level: 2, Count: 2},
	5:  {Level: 3, Count: 2},
	6:  {Level: 3, Count: 2},
	7:  {Level: 4, Count: 2},
	8:  {Level: 4, Count: 2},
	9:  {Level: 5, Count: 2},
	10: {Level: 5, Count: 2},
	11: {Level: 5, Count: 3},
	12: {Level: 5, Count: 3},
	13: {Level: 5, Count: 3},
	14: {Level: 5, Count: 3},
	15: {Level: 5, Count: 3},
	16: {Level: 5, Count: 3},
	17: {Level: 5, Count: 4},
	18: {Level: 5, Count: 4},
	19: {Level: 5, Count: 4},
	20: {Level: 5, Count: 4},
}

// ClassCasterLevel is one class's contribution to the shared slot pool:
// the class's caster fraction and its level in that class.
type ClassCasterLevel struct {
	Fraction catalog.CasterFraction
	Level    int
}

// EffectiveCasterLevel sums the fractional caster levels that feed the
// shared multiclass slot table. Pact and non-casters contribute nothing.
func EffectiveCasterLevel(classes []ClassCasterLevel) int {
	total := 0
	for _, c := range classes {
		switch c.Fraction {
		case catalog.CasterFull:
			total += c.Level
		case catalog.CasterHalf:
			total += c.Level / 2
		case catalog.CasterThird:
			total += c.Level / 3
		}
	}
	return total
}

// SpellSlots computes the standard slot counts per spell level (index 0
// is spell level 1). A single half caster reads its own class table;
// everything else goes through the effective caster level and the
// full-caster table. Returns a zero row when no class contributes.
func SpellSlots(classes []ClassCasterLevel) [9]int {
	shared := make([]ClassCasterLevel, 0, len(classes))
	for _, c := range classes {
		switch c.Fraction {
		case catalog.CasterFull, catalog.CasterHalf, catalog.CasterThird:
			shared = append(shared, c)
		}
	}
	if len(shared) == 1 && shared[0].Fraction == catalog.CasterHalf {
		return halfCasterSlots[clampLevel(shared[0].Level)]
	}
	level := EffectiveCasterLevel(shared)
	if level < 1 {
		return [9]int{}
	}
	return fullCasterSlots[clampLevel(level)]
}

// PactMagic returns the pact slot row for the summed warlock levels, or
// a zero value when the character has none.
func PactMagic(classes []ClassCasterLevel) PactSlots {
	level := 0
	for _, c := range classes {
		if c.Fraction == catalog.CasterPact {
			level += c.Level
		}
	}
	if level < 1 {
		return PactSlots{}
	}
	return pactSlots[clampLevel(level)]
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// PreparationLimit computes how many spells one prepared-caster class
// can ready: spellbook and prepared classes use class level + casting
// ability modifier, half casters half their level, minimum 1. Known
// casters have no preparation limit and return 0 with false.
func PreparationLimit(class *catalog.Class, classLevel, abilityMod int) (int, bool) {
	switch class.Preparation {
	case catalog.PreparePrepared, catalog.PrepareSpellbook:
	default:
		return 0, false
	}
	base := classLevel
	if class.Caster == catalog.CasterHalf {
		base = classLevel / 2
	}
	limit := base + abilityMod
	if limit < 1 {
		limit = 1
	}
	return limit, true
}
