package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog/srd"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

func intPtr(v int) *int { return &v }

func newTestCharacter() *entities.Character {
	return &entities.Character{
		ID:       "char_test",
		PlayerID: "player_test",
		Name:     "Bruenor",
		AbilityScores: entities.AbilityScores{
			Strength:     intPtr(10),
			Dexterity:    intPtr(14),
			Constitution: intPtr(16),
			Intelligence: intPtr(16),
			Wisdom:       intPtr(12),
			Charisma:     intPtr(8),
		},
		HPMode:    entities.HPModeCalculated,
		MaxHP:     10,
		CurrentHP: 10,
	}
}

func TestComputeStats_Abilities(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.Classes = []*entities.ClassLevel{{ClassSlug: "wizard", Level: 3, Primary: true, Order: 0}}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	require.NotNil(t, stats.Abilities["INT"])
	assert.Equal(t, 16, stats.Abilities["INT"].Score)
	assert.Equal(t, 3, stats.Abilities["INT"].Modifier)
	assert.Equal(t, -1, stats.Abilities["CHA"].Modifier)
	assert.Equal(t, 2, stats.ProficiencyBonus)
	assert.Equal(t, 3, stats.TotalLevel)
}

func TestComputeStats_RaceBonusesAndSpeed(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.RaceSlug = "hill-dwarf"
	c.Classes = []*entities.ClassLevel{{ClassSlug: "fighter", Level: 1, Primary: true, Order: 0}}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	// Hill dwarf adds +2 CON.
	assert.Equal(t, 18, stats.Abilities["CON"].Score)
	assert.Equal(t, "Medium", stats.Size)
	// Every movement type is present; modes the race lacks stay nil.
	require.Contains(t, stats.Speed, "walk")
	require.NotNil(t, stats.Speed["walk"])
	assert.Equal(t, 25, *stats.Speed["walk"])
	for _, kind := range []string{"fly", "swim", "climb"} {
		require.Contains(t, stats.Speed, kind)
		assert.Nil(t, stats.Speed[kind])
	}
	// Stonework lore advantage comes from the race.
	require.Len(t, stats.SkillAdvantages, 1)
	assert.Equal(t, "history", stats.SkillAdvantages[0].Skill)
	assert.Equal(t, "race:hill-dwarf", stats.SkillAdvantages[0].Source)
}

func TestComputeStats_SkillModifiers(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.Classes = []*entities.ClassLevel{{ClassSlug: "rogue", Level: 5, Primary: true, Order: 0}}
	c.Skills = []string{"stealth", "perception"}
	c.Expertise = []string{"stealth"}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	bySlug := map[string]rules.SkillView{}
	for _, sk := range stats.Skills {
		bySlug[sk.Slug] = sk
	}
	// Every catalog skill with a set ability appears.
	require.Len(t, stats.Skills, 18)

	// Stealth: DEX 14 (+2) with doubled proficiency at level 5.
	stealth := bySlug["stealth"]
	assert.True(t, stealth.Proficient)
	assert.True(t, stealth.Expertise)
	assert.Equal(t, 8, stealth.Modifier)

	// Perception: WIS 12 (+1) with plain proficiency.
	perception := bySlug["perception"]
	assert.True(t, perception.Proficient)
	assert.False(t, perception.Expertise)
	assert.Equal(t, 4, perception.Modifier)

	// Athletics: STR 10, no proficiency.
	athletics := bySlug["athletics"]
	assert.False(t, athletics.Proficient)
	assert.Equal(t, 0, athletics.Modifier)
}

func TestComputeStats_NoRaceMeansNoSpeed(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)
	assert.Nil(t, stats.Speed)
	assert.Empty(t, stats.Size)
}

func TestComputeStats_NoStrengthMeansNoEncumbrance(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.AbilityScores.Strength = nil

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)
	assert.Nil(t, stats.Encumbrance)
	assert.Nil(t, stats.ArmorClass)
}

func TestComputeStats_Encumbrance(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	// Chain mail at 55 lbs against STR 10 thresholds 50/100.
	c.Equipment = []*entities.EquipmentItem{
		{ItemSlug: "chain-mail", Quantity: 1, Equipped: true},
	}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	require.NotNil(t, stats.Encumbrance)
	assert.Equal(t, rules.EncumbranceLight, stats.Encumbrance.Status)
	assert.Equal(t, 10, stats.Encumbrance.SpeedPenalty)
	assert.Equal(t, 50, stats.Encumbrance.ThresholdEncumbered)
	assert.Equal(t, 100, stats.Encumbrance.ThresholdHeavy)
}

func TestComputeStats_ArmorClass(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.Equipment = []*entities.EquipmentItem{
		{ItemSlug: "leather-armor", Quantity: 1, Equipped: true},
		{ItemSlug: "shield", Quantity: 1, Equipped: true},
		{ItemSlug: "longsword", Quantity: 1, Equipped: true},
	}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	// Leather 11 + DEX 2 + shield 2.
	require.NotNil(t, stats.ArmorClass)
	assert.Equal(t, 15, *stats.ArmorClass)
}

func TestComputeStats_SpellSlotsAndPreparation(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.Classes = []*entities.ClassLevel{
		{ClassSlug: "cleric", Level: 5, Primary: true, Order: 0},
		{ClassSlug: "wizard", Level: 3, Order: 1},
	}
	c.Slots = []*entities.SpellSlotPool{
		{Type: entities.SlotTypeSpell, Level: 1, Max: 4, Used: 2},
	}
	c.Spells = []*entities.KnownSpell{
		{SpellSlug: "cure-wounds", ClassSlug: "cleric", Prepared: true},
		{SpellSlug: "bless", ClassSlug: "cleric", Prepared: true},
		{SpellSlug: "sleep", ClassSlug: "wizard"},
	}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	// Combined caster level 8: 4/3/3/2.
	require.Len(t, stats.SpellSlots, 4)
	assert.Equal(t, rules.SlotView{Type: "spell", Level: 1, Total: 4, Spent: 2, Available: 2}, stats.SpellSlots[0])
	assert.Equal(t, 3, stats.SpellSlots[1].Total)
	assert.Equal(t, 2, stats.SpellSlots[3].Total)

	// Cleric prepared + wizard spellbook disagree.
	assert.Equal(t, "mixed", stats.PreparationMethod)
	// Cleric 5 + WIS 1 = 6; wizard 3 + INT 3 = 6.
	require.NotNil(t, stats.PreparationLimit)
	assert.Equal(t, 12, *stats.PreparationLimit)
	assert.Equal(t, 2, stats.PreparedCount)
}

func TestComputeStats_PactMagicSeparate(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.Classes = []*entities.ClassLevel{
		{ClassSlug: "warlock", Level: 5, Primary: true, Order: 0},
		{ClassSlug: "wizard", Level: 2, Order: 1},
	}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	var pact, standard []rules.SlotView
	for _, sv := range stats.SpellSlots {
		if sv.Type == entities.SlotTypePact {
			pact = append(pact, sv)
		} else {
			standard = append(standard, sv)
		}
	}
	// Warlock levels never feed the shared table.
	require.Len(t, standard, 1)
	assert.Equal(t, 3, standard[0].Total)
	require.Len(t, pact, 1)
	assert.Equal(t, 3, pact[0].Level)
	assert.Equal(t, 2, pact[0].Total)
}

func TestComputeStats_FeatAdvantages(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.Feats = []string{"war-caster"}

	stats, err := rules.ComputeStats(c, store)
	require.NoError(t, err)

	require.Len(t, stats.SkillAdvantages, 1)
	assert.Equal(t, "feat:war-caster", stats.SkillAdvantages[0].Source)
}

func TestMaxHPForClasses(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	// Fighter 1 with CON 16: 10 + 3.
	c.Classes = []*entities.ClassLevel{{ClassSlug: "fighter", Level: 1, Primary: true, Order: 0}}

	hp, err := rules.MaxHPForClasses(c, store)
	require.NoError(t, err)
	assert.Equal(t, 13, hp)

	// Fighter 2: + floor(10/2)+1+3 = 9.
	c.Classes[0].Level = 2
	hp, err = rules.MaxHPForClasses(c, store)
	require.NoError(t, err)
	assert.Equal(t, 22, hp)
}

func TestMaxHPForClasses_RaceAndFeatBonuses(t *testing.T) {
	store := srd.New()
	c := newTestCharacter()
	c.RaceSlug = "hill-dwarf"
	c.Feats = []string{"tough"}
	c.Classes = []*entities.ClassLevel{{ClassSlug: "fighter", Level: 2, Primary: true, Order: 0}}

	hp, err := rules.MaxHPForClasses(c, store)
	require.NoError(t, err)

	// CON 16 + 2 racial = 18 (mod 4): 14 + 10, plus 3 per level from
	// dwarven toughness and Tough.
	assert.Equal(t, 30, hp)
}
