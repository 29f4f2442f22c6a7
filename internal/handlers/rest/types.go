package rest

import (
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/choices"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/resources"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

type classLevelView struct {
	Class        string `json:"class"`
	Level        int    `json:"level"`
	Primary      bool   `json:"primary"`
	HitDiceSpent int    `json:"hit_dice_spent"`
}

type featureGrantView struct {
	Feature       string `json:"feature"`
	Class         string `json:"class"`
	LevelAcquired int    `json:"level_acquired"`
	MaxUses       *int   `json:"max_uses"`
	UsesRemaining int    `json:"uses_remaining"`
	ResetsOn      string `json:"resets_on,omitempty"`
}

type knownSpellView struct {
	Spell    string `json:"spell"`
	Class    string `json:"class"`
	Prepared bool   `json:"prepared"`
}

type slotView struct {
	Type      string `json:"type"`
	Level     int    `json:"level"`
	Total     int    `json:"total"`
	Spent     int    `json:"spent"`
	Available int    `json:"available"`
}

type equipmentView struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Equipped bool   `json:"equipped"`
}

type deathSavesView struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

type resolvedChoiceView struct {
	ChoiceID   string   `json:"choice_id"`
	Type       string   `json:"type"`
	Selections []string `json:"selections"`
	ResolvedAt int64    `json:"resolved_at"`
}

type characterView struct {
	ID                  string               `json:"id"`
	PlayerID            string               `json:"player_id"`
	Name                string               `json:"name"`
	Race                string               `json:"race,omitempty"`
	Background          string               `json:"background,omitempty"`
	Alignment           string               `json:"alignment,omitempty"`
	Inspiration         bool                 `json:"inspiration"`
	LevelingMode        string               `json:"leveling_mode"`
	ExperiencePoints    int                  `json:"experience_points"`
	TotalLevel          int                  `json:"total_level"`
	AbilityScores       map[string]*int      `json:"ability_scores"`
	HPMode              string               `json:"hp_mode"`
	MaxHP               int                  `json:"max_hit_points"`
	CurrentHP           int                  `json:"current_hit_points"`
	TempHP              int                  `json:"temp_hit_points"`
	Exhaustion          int                  `json:"exhaustion"`
	DeathSaves          deathSavesView       `json:"death_saves"`
	AsiChoicesRemaining int                  `json:"asi_choices_remaining"`
	Classes             []classLevelView     `json:"classes"`
	Features            []featureGrantView   `json:"features"`
	Spells              []knownSpellView     `json:"spells"`
	SpellSlots          []slotView           `json:"spell_slots"`
	Equipment           []equipmentView      `json:"equipment"`
	Feats               []string             `json:"feats"`
	Skills              []string             `json:"skills"`
	Expertise           []string             `json:"expertise"`
	Choices             []resolvedChoiceView `json:"choices"`
}

// nonNilStrings keeps empty slice fields rendering as [] instead of null.
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func characterToView(c *entities.Character) characterView {
	view := characterView{
		ID:                  c.ID,
		PlayerID:            c.PlayerID,
		Name:                c.Name,
		Race:                c.RaceSlug,
		Background:          c.Background,
		Alignment:           c.Alignment,
		Inspiration:         c.Inspiration,
		LevelingMode:        string(c.LevelingMode),
		ExperiencePoints:    c.ExperiencePoints,
		TotalLevel:          c.TotalLevel(),
		HPMode:              string(c.HPMode),
		MaxHP:               c.MaxHP,
		CurrentHP:           c.CurrentHP,
		TempHP:              c.TempHP,
		Exhaustion:          c.Exhaustion,
		DeathSaves:          deathSavesView(c.DeathSaves),
		AsiChoicesRemaining: c.AsiChoicesRemaining,
		Feats:               nonNilStrings(c.Feats),
		Skills:              nonNilStrings(c.Skills),
		Expertise:           nonNilStrings(c.Expertise),
		AbilityScores: map[string]*int{
			"strength":     c.AbilityScores.Strength,
			"dexterity":    c.AbilityScores.Dexterity,
			"constitution": c.AbilityScores.Constitution,
			"intelligence": c.AbilityScores.Intelligence,
			"wisdom":       c.AbilityScores.Wisdom,
			"charisma":     c.AbilityScores.Charisma,
		},
		Classes:    make([]classLevelView, 0, len(c.Classes)),
		Features:   make([]featureGrantView, 0, len(c.Features)),
		Spells:     make([]knownSpellView, 0, len(c.Spells)),
		SpellSlots: make([]slotView, 0, len(c.Slots)),
		Equipment:  make([]equipmentView, 0, len(c.Equipment)),
		Choices:    make([]resolvedChoiceView, 0, len(c.Choices)),
	}
	for _, cl := range c.Classes {
		view.Classes = append(view.Classes, classLevelView{
			Class:        cl.ClassSlug,
			Level:        cl.Level,
			Primary:      cl.Primary,
			HitDiceSpent: cl.HitDiceSpent,
		})
	}
	for _, grant := range c.Features {
		view.Features = append(view.Features, featureGrantView{
			Feature:       grant.FeatureSlug,
			Class:         grant.ClassSlug,
			LevelAcquired: grant.LevelAcquired,
			MaxUses:       grant.MaxUses,
			UsesRemaining: grant.UsesRemaining,
			ResetsOn:      grant.ResetsOn,
		})
	}
	for _, spell := range c.Spells {
		view.Spells = append(view.Spells, knownSpellView{
			Spell:    spell.SpellSlug,
			Class:    spell.ClassSlug,
			Prepared: spell.Prepared,
		})
	}
	for _, pool := range c.Slots {
		view.SpellSlots = append(view.SpellSlots, slotView{
			Type:      pool.Type,
			Level:     pool.Level,
			Total:     pool.Max,
			Spent:     pool.Used,
			Available: pool.Remaining(),
		})
	}
	for _, item := range c.Equipment {
		view.Equipment = append(view.Equipment, equipmentView{
			Item:     item.ItemSlug,
			Quantity: item.Quantity,
			Equipped: item.Equipped,
		})
	}
	for _, rc := range c.Choices {
		view.Choices = append(view.Choices, resolvedChoiceView{
			ChoiceID:   rc.ChoiceID,
			Type:       rc.Type,
			Selections: rc.Selections,
			ResolvedAt: rc.ResolvedAt,
		})
	}
	return view
}

func slotsToViews(slots []rules.SlotView) []slotView {
	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, slotView(s))
	}
	return views
}

type abilityBlockView struct {
	Score    int `json:"score"`
	Modifier int `json:"modifier"`
}

type encumbranceView struct {
	CurrentWeight       float64 `json:"current_weight"`
	Status              string  `json:"status"`
	SpeedPenalty        int     `json:"speed_penalty"`
	Disadvantage        bool    `json:"disadvantage"`
	ThresholdEncumbered int     `json:"threshold_encumbered"`
	ThresholdHeavy      int     `json:"threshold_heavily_encumbered"`
}

type skillAdvantageStatsView struct {
	Skill     string `json:"skill"`
	Condition string `json:"condition,omitempty"`
	Source    string `json:"source"`
}

type skillStatsView struct {
	Slug       string `json:"skill"`
	Name       string `json:"name"`
	Ability    string `json:"ability"`
	Modifier   int    `json:"modifier"`
	Proficient bool   `json:"proficient"`
	Expertise  bool   `json:"expertise"`
}

type statsView struct {
	Abilities         map[string]abilityBlockView `json:"abilities"`
	ProficiencyBonus  int                         `json:"proficiency_bonus"`
	TotalLevel        int                         `json:"total_level"`
	ArmorClass        *int                        `json:"armor_class"`
	MaxHP             int                         `json:"max_hit_points"`
	CurrentHP         int                         `json:"current_hit_points"`
	TempHP            int                         `json:"temp_hit_points"`
	Size              *string                     `json:"size"`
	Speed             map[string]*int             `json:"speed"`
	Encumbrance       *encumbranceView            `json:"encumbrance"`
	Skills            []skillStatsView            `json:"skills"`
	SpellSlots        []slotView                  `json:"spell_slots"`
	PreparationMethod *string                     `json:"preparation_method"`
	PreparationLimit  *int                        `json:"preparation_limit"`
	PreparedCount     int                         `json:"prepared_count"`
	SkillAdvantages   []skillAdvantageStatsView   `json:"skill_advantages"`
}

func statsToView(stats *rules.DerivedStats) statsView {
	view := statsView{
		Abilities:        map[string]abilityBlockView{},
		ProficiencyBonus: stats.ProficiencyBonus,
		TotalLevel:       stats.TotalLevel,
		ArmorClass:       stats.ArmorClass,
		MaxHP:            stats.MaxHP,
		CurrentHP:        stats.CurrentHP,
		TempHP:           stats.TempHP,
		Speed:            stats.Speed,
		Skills:           make([]skillStatsView, 0, len(stats.Skills)),
		SpellSlots:       slotsToViews(stats.SpellSlots),
		PreparationLimit: stats.PreparationLimit,
		PreparedCount:    stats.PreparedCount,
		SkillAdvantages:  make([]skillAdvantageStatsView, 0, len(stats.SkillAdvantages)),
	}
	for name, block := range stats.Abilities {
		view.Abilities[name] = abilityBlockView{Score: block.Score, Modifier: block.Modifier}
	}
	if stats.Size != "" {
		size := stats.Size
		view.Size = &size
	}
	if stats.Encumbrance != nil {
		enc := encumbranceView(*stats.Encumbrance)
		view.Encumbrance = &enc
	}
	if stats.PreparationMethod != "" {
		method := stats.PreparationMethod
		view.PreparationMethod = &method
	}
	for _, sk := range stats.Skills {
		view.Skills = append(view.Skills, skillStatsView(sk))
	}
	for _, adv := range stats.SkillAdvantages {
		view.SkillAdvantages = append(view.SkillAdvantages, skillAdvantageStatsView(adv))
	}
	return view
}

type choiceView struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Source      string   `json:"source"`
	SourceSlug  string   `json:"source_slug"`
	Level       int      `json:"level"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Choose      int      `json:"choose"`
	Options     []string `json:"options"`
	Resolved    bool     `json:"resolved"`
	Selection   []string `json:"selection,omitempty"`
}

func choiceToView(c *choices.Choice) choiceView {
	return choiceView{
		ID:          c.ID.String(),
		Type:        c.ID.Type,
		Source:      c.ID.Source,
		SourceSlug:  c.ID.SourceSlug,
		Level:       c.ID.Level,
		Description: c.Description,
		Required:    c.Required,
		Choose:      c.Choose,
		Options:     c.Options,
		Resolved:    c.Resolved,
		Selection:   c.Selection,
	}
}

type choiceSummaryView struct {
	Total    int            `json:"total"`
	Required int            `json:"required"`
	Optional int            `json:"optional"`
	ByType   map[string]int `json:"by_type"`
	BySource map[string]int `json:"by_source"`
}

type hitDicePoolView struct {
	DieType   string `json:"die_type"`
	Max       int    `json:"max"`
	Spent     int    `json:"spent"`
	Available int    `json:"available"`
}

func hitDicePoolsToViews(pools []resources.HitDicePool) []hitDicePoolView {
	views := make([]hitDicePoolView, 0, len(pools))
	for _, p := range pools {
		views = append(views, hitDicePoolView(p))
	}
	return views
}

type featureUseView struct {
	Feature       string `json:"feature"`
	Class         string `json:"class"`
	MaxUses       *int   `json:"max_uses"`
	UsesRemaining int    `json:"uses_remaining"`
	ResetsOn      string `json:"resets_on,omitempty"`
}

func featureUseToView(f resources.FeatureUse) featureUseView {
	return featureUseView{
		Feature:       f.FeatureSlug,
		Class:         f.ClassSlug,
		MaxUses:       f.MaxUses,
		UsesRemaining: f.UsesRemaining,
		ResetsOn:      f.ResetsOn,
	}
}
