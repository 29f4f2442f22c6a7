// Package catalog defines the read-only reference data the rules engine
// consults: classes with level-progression tables, races, feats, skills,
// items, and spells. Catalog entities are shared, referenced by slug, and
// never mutated by character operations.
package catalog

// CasterFraction describes how many effective caster levels one class
// level contributes toward the shared multiclass spell-slot table. Pact
// magic is tracked outside that pool entirely.
type CasterFraction string

// Caster fractions
const (
	CasterNone  CasterFraction = "none"
	CasterFull  CasterFraction = "full"
	CasterHalf  CasterFraction = "half"
	CasterThird CasterFraction = "third"
	CasterPact  CasterFraction = "pact"
)

// PreparationMethod describes how a class readies its spells.
type PreparationMethod string

// Preparation methods
const (
	PrepareNone      PreparationMethod = ""
	PrepareKnown     PreparationMethod = "known"
	PrepareSpellbook PreparationMethod = "spellbook"
	PreparePrepared  PreparationMethod = "prepared"
)

// ResetTiming describes when a limited-use feature recharges.
type ResetTiming string

// Reset timings
const (
	ResetNone      ResetTiming = ""
	ResetShortRest ResetTiming = "short_rest"
	ResetLongRest  ResetTiming = "long_rest"
	ResetDawn      ResetTiming = "dawn"
)

// UsesAtLevel is one row of a feature's scaling use counter: at class
// level Level the feature has Uses uses. -1 means unlimited.
type UsesAtLevel struct {
	Level int
	Uses  int
}

// Feature is a class feature granted at a specific class level.
type Feature struct {
	Slug        string
	Name        string
	Description string
	Level       int
	Optional    bool
	// MaxUses holds the scaling counter rows, lowest level first.
	// Empty for passive features with no use tracking.
	MaxUses  []UsesAtLevel
	ResetsOn ResetTiming
}

// UsesAt returns the counter value at the given class level, or 0 and
// false when the feature has no counter rows at or below that level.
func (f *Feature) UsesAt(classLevel int) (int, bool) {
	uses, found := 0, false
	for _, row := range f.MaxUses {
		if row.Level <= classLevel {
			uses, found = row.Uses, true
		}
	}
	return uses, found
}

// SkillChoiceSpec describes a "choose N skills from this list" grant.
type SkillChoiceSpec struct {
	Group  string
	Choose int
	From   []string
}

// ExpertiseChoiceSpec describes a "double your proficiency bonus in N
// skills you are proficient with" grant at a class level.
type ExpertiseChoiceSpec struct {
	Group  string
	Level  int
	Choose int
}

// SpellChoiceSpec describes a "choose N spells" grant at a class level.
type SpellChoiceSpec struct {
	Group    string
	Level    int
	Choose   int
	MaxLevel int
}

// ItemGrant is one item with quantity inside an equipment option.
type ItemGrant struct {
	ItemSlug string
	Quantity int
}

// EquipmentOption is one selectable bundle in an equipment choice group.
type EquipmentOption struct {
	Key   string
	Items []ItemGrant
}

// EquipmentChoice is a starting-equipment decision: pick one option.
type EquipmentChoice struct {
	Group   string
	Options []EquipmentOption
}

// Class is a class catalog entry with everything the progression and
// derived-stats rules need.
type Class struct {
	Slug                string
	Name                string
	HitDie              int
	Caster              CasterFraction
	Preparation         PreparationMethod
	SpellcastingAbility string
	// ASILevels are the class levels that grant an ability score
	// improvement. Fighter and rogue carry extra entries.
	ASILevels        []int
	SkillChoices     *SkillChoiceSpec
	ExpertiseChoices []ExpertiseChoiceSpec
	SpellChoices     []SpellChoiceSpec
	EquipmentChoices []EquipmentChoice
	Features         []Feature
	SpellList        []string
}

// FeaturesAt returns the non-optional features granted at exactly the
// given class level.
func (c *Class) FeaturesAt(level int) []Feature {
	var out []Feature
	for _, f := range c.Features {
		if f.Level == level && !f.Optional {
			out = append(out, f)
		}
	}
	return out
}

// IsASILevel reports whether the given class level grants an ASI.
func (c *Class) IsASILevel(level int) bool {
	for _, l := range c.ASILevels {
		if l == level {
			return true
		}
	}
	return false
}

// SkillAdvantage is a conditional advantage on a skill granted by a race
// or feat modifier.
type SkillAdvantage struct {
	Skill     string
	Condition string
}

// Race is a race catalog entry.
type Race struct {
	Slug            string
	Name            string
	Size            string
	Speed           map[string]int
	AbilityBonuses  map[string]int
	SkillAdvantages []SkillAdvantage
	HPPerLevel      int
	SkillChoices    *SkillChoiceSpec
}

// Feat is a feat catalog entry with its rule modifiers.
type Feat struct {
	Slug            string
	Name            string
	Description     string
	AbilityBonuses  map[string]int
	SkillAdvantages []SkillAdvantage
	HPPerLevel      int
}

// Item is an equipment catalog entry; armor fields are zero for
// non-armor items.
type Item struct {
	Slug       string
	Name       string
	Weight     float64
	ArmorClass int
	// ArmorType is one of light, medium, heavy, shield, or empty.
	ArmorType string
}

// Skill is a skill catalog entry.
type Skill struct {
	Slug    string
	Name    string
	Ability string
}

// Spell is a spell catalog entry (progression-relevant subset).
type Spell struct {
	Slug    string
	Name    string
	Level   int
	School  string
	Classes []string
}

// Store is the read-only catalog lookup interface. Implementations return
// errors.NotFound for unknown slugs.
type Store interface {
	Class(slug string) (*Class, error)
	Race(slug string) (*Race, error)
	Feat(slug string) (*Feat, error)
	Feats() []*Feat
	Item(slug string) (*Item, error)
	Skill(slug string) (*Skill, error)
	Skills() []*Skill
	Spell(slug string) (*Spell, error)
}
