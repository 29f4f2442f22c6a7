package rules

import (
	"sort"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
)

// AbilityBlock pairs an effective score with its modifier.
type AbilityBlock struct {
	Score    int
	Modifier int
}

// SlotView is one spell slot tier enriched with usage.
type SlotView struct {
	Type      string
	Level     int
	Total     int
	Spent     int
	Available int
}

// SkillView is one skill with its computed check modifier.
type SkillView struct {
	Slug       string
	Name       string
	Ability    string
	Modifier   int
	Proficient bool
	Expertise  bool
}

// SkillAdvantageView is one aggregated skill advantage with its source.
type SkillAdvantageView struct {
	Skill     string
	Condition string
	Source    string
}

// DerivedStats is the materialized read model for a character. Optional
// sections are nil when their inputs are absent: no race means no speed
// or size, no Strength means no encumbrance, no caster class means no
// preparation data.
type DerivedStats struct {
	Abilities        map[string]*AbilityBlock
	ProficiencyBonus int
	TotalLevel       int

	ArmorClass *int

	MaxHP     int
	CurrentHP int
	TempHP    int

	Size string
	// Speed carries every movement type; modes the race lacks are nil.
	Speed map[string]*int

	Encumbrance *Encumbrance

	Skills []SkillView

	SpellSlots []SlotView

	PreparationMethod string
	PreparationLimit  *int
	PreparedCount     int

	SkillAdvantages []SkillAdvantageView
}

var abilityNames = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

var movementTypes = []string{"walk", "fly", "swim", "climb"}

// ComputeStats materializes the full derived view. It is pure over the
// character and the catalog and safe to re-run on every read. Missing
// optional data produces nil sections rather than errors; only a
// catalog reference the character holds but the store cannot resolve is
// an error.
func ComputeStats(c *entities.Character, store catalog.Store) (*DerivedStats, error) {
	stats := &DerivedStats{
		Abilities:  map[string]*AbilityBlock{},
		TotalLevel: c.TotalLevel(),
		MaxHP:      c.MaxHP,
		CurrentHP:  c.CurrentHP,
		TempHP:     c.TempHP,
	}
	stats.ProficiencyBonus = ProficiencyBonus(stats.TotalLevel)

	var race *catalog.Race
	if c.RaceSlug != "" {
		var err error
		race, err = store.Race(c.RaceSlug)
		if err != nil {
			return nil, err
		}
		stats.Size = race.Size
		stats.Speed = make(map[string]*int, len(movementTypes))
		for _, kind := range movementTypes {
			if ft, ok := race.Speed[kind]; ok {
				v := ft
				stats.Speed[kind] = &v
			} else {
				stats.Speed[kind] = nil
			}
		}
	}

	for _, name := range abilityNames {
		base, ok := c.AbilityScores.Get(name)
		if !ok {
			continue
		}
		score := base
		if race != nil {
			score += race.AbilityBonuses[name]
		}
		stats.Abilities[name] = &AbilityBlock{Score: score, Modifier: AbilityModifier(score)}
	}

	if err := computeEquipmentStats(c, store, stats); err != nil {
		return nil, err
	}
	computeSkills(c, store, stats)
	if err := computeCasting(c, store, stats); err != nil {
		return nil, err
	}
	if err := computeSkillAdvantages(c, store, race, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// computeEquipmentStats fills armor class and encumbrance from the
// character's equipment.
func computeEquipmentStats(c *entities.Character, store catalog.Store, stats *DerivedStats) error {
	var (
		weight      float64
		armorBase   int
		armorType   string
		shieldBonus int
	)
	for _, eq := range c.Equipment {
		item, err := store.Item(eq.ItemSlug)
		if err != nil {
			return err
		}
		if eq.Equipped {
			weight += item.Weight * float64(eq.Quantity)
			switch item.ArmorType {
			case "shield":
				shieldBonus += item.ArmorClass
			case "light", "medium", "heavy":
				armorBase = item.ArmorClass
				armorType = item.ArmorType
			}
		}
	}

	if dex, ok := stats.Abilities["DEX"]; ok {
		ac := ArmorClass(dex.Modifier, armorBase, armorType, shieldBonus)
		stats.ArmorClass = &ac
	}
	if str, ok := stats.Abilities["STR"]; ok {
		enc := ComputeEncumbrance(str.Score, weight)
		stats.Encumbrance = &enc
	}
	return nil
}

// computeCasting fills the slot views and preparation data.
func computeCasting(c *entities.Character, store catalog.Store, stats *DerivedStats) error {
	var (
		casterLevels []ClassCasterLevel
		methods      []catalog.PreparationMethod
		prepLimit    int
		hasPrepLimit bool
	)
	for _, cl := range c.Classes {
		class, err := store.Class(cl.ClassSlug)
		if err != nil {
			return err
		}
		casterLevels = append(casterLevels, ClassCasterLevel{Fraction: class.Caster, Level: cl.Level})
		if class.Caster == catalog.CasterNone {
			continue
		}
		if class.Preparation != catalog.PrepareNone {
			methods = append(methods, class.Preparation)
		}
		mod := 0
		if ab, ok := stats.Abilities[class.SpellcastingAbility]; ok {
			mod = ab.Modifier
		}
		if limit, ok := PreparationLimit(class, cl.Level, mod); ok {
			prepLimit += limit
			hasPrepLimit = true
		}
	}

	standard := SpellSlots(casterLevels)
	for lvl := 1; lvl <= 9; lvl++ {
		total := standard[lvl-1]
		if total == 0 {
			continue
		}
		stats.SpellSlots = append(stats.SpellSlots, slotView(c, entities.SlotTypeSpell, lvl, total))
	}
	if pact := PactMagic(casterLevels); pact.Count > 0 {
		stats.SpellSlots = append(stats.SpellSlots, slotView(c, entities.SlotTypePact, pact.Level, pact.Count))
	}

	if len(methods) > 0 {
		method := methods[0]
		for _, m := range methods[1:] {
			if m != method {
				stats.PreparationMethod = "mixed"
				break
			}
		}
		if stats.PreparationMethod == "" {
			stats.PreparationMethod = string(method)
		}
	}
	if hasPrepLimit {
		stats.PreparationLimit = &prepLimit
	}
	for _, sp := range c.Spells {
		if sp.Prepared {
			stats.PreparedCount++
		}
	}
	return nil
}

// slotView joins a table-derived maximum with the stored pool's spent
// count. Spent beyond the maximum indicates stale state and clamps.
func slotView(c *entities.Character, slotType string, level, total int) SlotView {
	spent := 0
	if pool := c.Slot(slotType, level); pool != nil {
		spent = pool.Used
	}
	if spent > total {
		spent = total
	}
	return SlotView{
		Type:      slotType,
		Level:     level,
		Total:     total,
		Spent:     spent,
		Available: total - spent,
	}
}

// computeSkills fills the per-skill check modifiers from the catalog's
// skill list. Skills keyed to an unset ability are omitted.
func computeSkills(c *entities.Character, store catalog.Store, stats *DerivedStats) {
	for _, skill := range store.Skills() {
		ab, ok := stats.Abilities[skill.Ability]
		if !ok {
			continue
		}
		proficient := c.HasSkill(skill.Slug)
		expertise := proficient && c.HasExpertise(skill.Slug)
		stats.Skills = append(stats.Skills, SkillView{
			Slug:       skill.Slug,
			Name:       skill.Name,
			Ability:    skill.Ability,
			Modifier:   SkillModifier(ab.Score, proficient, expertise, stats.TotalLevel),
			Proficient: proficient,
			Expertise:  expertise,
		})
	}
}

// computeSkillAdvantages aggregates advantages from the race and every
// granted feat. Duplicate skills from independent sources all appear.
func computeSkillAdvantages(c *entities.Character, store catalog.Store, race *catalog.Race, stats *DerivedStats) error {
	if race != nil {
		for _, adv := range race.SkillAdvantages {
			stats.SkillAdvantages = append(stats.SkillAdvantages, SkillAdvantageView{
				Skill:     adv.Skill,
				Condition: adv.Condition,
				Source:    "race:" + race.Slug,
			})
		}
	}
	feats := append([]string(nil), c.Feats...)
	sort.Strings(feats)
	for _, slug := range feats {
		feat, err := store.Feat(slug)
		if err != nil {
			return err
		}
		for _, adv := range feat.SkillAdvantages {
			stats.SkillAdvantages = append(stats.SkillAdvantages, SkillAdvantageView{
				Skill:     adv.Skill,
				Condition: adv.Condition,
				Source:    "feat:" + feat.Slug,
			})
		}
	}
	return nil
}

// MaxHPForClasses recomputes a calculated-mode hit point maximum from
// scratch: full die plus CON for the first level taken, the average for
// every later level, plus per-level bonuses from the race and feats.
func MaxHPForClasses(c *entities.Character, store catalog.Store) (int, error) {
	conMod := 0
	if con, ok := c.AbilityScores.Get("CON"); ok {
		conMod = AbilityModifier(con)
	}
	perLevel := 0
	if c.RaceSlug != "" {
		race, err := store.Race(c.RaceSlug)
		if err != nil {
			return 0, err
		}
		perLevel += race.HPPerLevel
		if race.AbilityBonuses["CON"] != 0 {
			if con, ok := c.AbilityScores.Get("CON"); ok {
				conMod = AbilityModifier(con + race.AbilityBonuses["CON"])
			}
		}
	}
	for _, slug := range c.Feats {
		feat, err := store.Feat(slug)
		if err != nil {
			return 0, err
		}
		perLevel += feat.HPPerLevel
	}

	ordered := append([]*entities.ClassLevel(nil), c.Classes...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	total := 0
	first := true
	for _, cl := range ordered {
		class, err := store.Class(cl.ClassSlug)
		if err != nil {
			return 0, err
		}
		for lvl := 1; lvl <= cl.Level; lvl++ {
			if first {
				total += FirstLevelHP(class.HitDie, conMod)
				first = false
				continue
			}
			total += HitPointGain(class.HitDie, conMod)
		}
	}
	total += perLevel * c.TotalLevel()
	if total < 1 && !first {
		total = 1
	}
	return total, nil
}
