// Package entities holds the persistent character model.
//
// These are data-only structs. Derived values (modifiers, proficiency
// bonus, spell slot maxima, encumbrance) are computed by internal/rules;
// state transitions live in the orchestrators.
package entities

// HPMode controls how maximum hit points are maintained.
type HPMode string

// HP modes
const (
	HPModeCalculated HPMode = "calculated"
	HPModeManual     HPMode = "manual"
)

// LevelingMode controls whether experience points drive level-ups.
type LevelingMode string

// Leveling modes
const (
	LevelingXP        LevelingMode = "xp"
	LevelingMilestone LevelingMode = "milestone"
)

// SlotTypeSpell and SlotTypePact distinguish standard spell slots from
// warlock pact magic slots.
const (
	SlotTypeSpell = "spell"
	SlotTypePact  = "pact"
)

// AbilityScores holds the six base scores. Pointers because a character
// under construction may not have rolled yet.
type AbilityScores struct {
	Strength     *int
	Dexterity    *int
	Constitution *int
	Intelligence *int
	Wisdom       *int
	Charisma     *int
}

// Complete reports whether all six scores are set.
func (a *AbilityScores) Complete() bool {
	return a.Strength != nil && a.Dexterity != nil && a.Constitution != nil &&
		a.Intelligence != nil && a.Wisdom != nil && a.Charisma != nil
}

// Get returns the named score ("STR".."CHA") and whether it is set.
func (a *AbilityScores) Get(ability string) (int, bool) {
	var p *int
	switch ability {
	case "STR":
		p = a.Strength
	case "DEX":
		p = a.Dexterity
	case "CON":
		p = a.Constitution
	case "INT":
		p = a.Intelligence
	case "WIS":
		p = a.Wisdom
	case "CHA":
		p = a.Charisma
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Set assigns the named score. Unknown names are ignored.
func (a *AbilityScores) Set(ability string, value int) {
	v := value
	switch ability {
	case "STR":
		a.Strength = &v
	case "DEX":
		a.Dexterity = &v
	case "CON":
		a.Constitution = &v
	case "INT":
		a.Intelligence = &v
	case "WIS":
		a.Wisdom = &v
	case "CHA":
		a.Charisma = &v
	}
}

// ClassLevel is one class a character has levels in. Order preserves the
// sequence classes were taken in; the Primary class anchors starting
// proficiencies and equipment.
type ClassLevel struct {
	ClassSlug    string
	Level        int
	Primary      bool
	Order        int
	HitDiceSpent int
}

// FeatureGrant is a class feature instance on a character. MaxUses is
// nil for passive features; -1 means unlimited uses.
type FeatureGrant struct {
	FeatureSlug   string
	ClassSlug     string
	LevelAcquired int
	MaxUses       *int
	UsesRemaining int
	ResetsOn      string
}

// SpellSlotPool tracks one slot level's maximum and expenditure. Type is
// SlotTypeSpell or SlotTypePact.
type SpellSlotPool struct {
	Type  string
	Level int
	Max   int
	Used  int
}

// Remaining returns unspent slots, never negative.
func (p *SpellSlotPool) Remaining() int {
	if p.Used > p.Max {
		return 0
	}
	return p.Max - p.Used
}

// KnownSpell is a spell on the character's list for one of its classes.
type KnownSpell struct {
	SpellSlug string
	ClassSlug string
	Prepared  bool
}

// EquipmentItem is an owned item stack.
type EquipmentItem struct {
	ItemSlug string
	Quantity int
	Equipped bool
}

// ResolvedChoice records one resolved character-building decision so it
// can be listed and undone.
type ResolvedChoice struct {
	ChoiceID   string
	Type       string
	Selections []string
	ResolvedAt int64
}

// DeathSaves tracks death saving throw progress while at 0 HP.
type DeathSaves struct {
	Successes int
	Failures  int
}

// Character is the full persistent character record.
type Character struct {
	ID         string
	PlayerID   string
	Name       string
	RaceSlug   string
	Background string
	Alignment  string

	Inspiration bool

	LevelingMode     LevelingMode
	ExperiencePoints int

	AbilityScores AbilityScores

	HPMode    HPMode
	MaxHP     int
	CurrentHP int
	TempHP    int

	Exhaustion int
	DeathSaves DeathSaves

	// AsiChoicesRemaining counts ability score improvements granted by
	// level-ups and not yet spent on an ASI or feat.
	AsiChoicesRemaining int

	Classes   []*ClassLevel
	Features  []*FeatureGrant
	Spells    []*KnownSpell
	Slots     []*SpellSlotPool
	Equipment []*EquipmentItem
	Feats     []string
	Skills    []string
	Expertise []string
	Choices   []*ResolvedChoice

	CreatedAt int64
	UpdatedAt int64
}

// TotalLevel is the sum of all class levels.
func (c *Character) TotalLevel() int {
	total := 0
	for _, cl := range c.Classes {
		total += cl.Level
	}
	return total
}

// PrimaryClass returns the class marked primary, falling back to the
// first class taken. Nil when the character has no classes.
func (c *Character) PrimaryClass() *ClassLevel {
	var first *ClassLevel
	for _, cl := range c.Classes {
		if cl.Primary {
			return cl
		}
		if first == nil || cl.Order < first.Order {
			first = cl
		}
	}
	return first
}

// Class returns the class level entry for the given slug, or nil.
func (c *Character) Class(slug string) *ClassLevel {
	for _, cl := range c.Classes {
		if cl.ClassSlug == slug {
			return cl
		}
	}
	return nil
}

// Feature returns the feature grant with the given slug, or nil.
func (c *Character) Feature(slug string) *FeatureGrant {
	for _, f := range c.Features {
		if f.FeatureSlug == slug {
			return f
		}
	}
	return nil
}

// Slot returns the slot pool for the given type and level, or nil.
func (c *Character) Slot(slotType string, level int) *SpellSlotPool {
	for _, p := range c.Slots {
		if p.Type == slotType && p.Level == level {
			return p
		}
	}
	return nil
}

// Choice returns the resolved choice with the given ID, or nil.
func (c *Character) Choice(choiceID string) *ResolvedChoice {
	for _, rc := range c.Choices {
		if rc.ChoiceID == choiceID {
			return rc
		}
	}
	return nil
}

// HasSkill reports whether the character is proficient in the skill.
func (c *Character) HasSkill(slug string) bool {
	for _, s := range c.Skills {
		if s == slug {
			return true
		}
	}
	return false
}

// HasExpertise reports whether the character has expertise in the skill.
func (c *Character) HasExpertise(slug string) bool {
	for _, s := range c.Expertise {
		if s == slug {
			return true
		}
	}
	return false
}

// HasFeat reports whether the character has taken the feat.
func (c *Character) HasFeat(slug string) bool {
	for _, f := range c.Feats {
		if f == slug {
			return true
		}
	}
	return false
}

// MissingForLevelUp lists what blocks a level-up: unset ability scores
// or an empty class list. Empty means the character is complete.
func (c *Character) MissingForLevelUp() []string {
	var missing []string
	if !c.AbilityScores.Complete() {
		missing = append(missing, "ability_scores")
	}
	if len(c.Classes) == 0 {
		missing = append(missing, "class")
	}
	if c.RaceSlug == "" {
		missing = append(missing, "race")
	}
	return missing
}
