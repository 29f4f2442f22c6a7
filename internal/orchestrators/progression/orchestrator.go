// Package progression implements the level-up state machine and the
// experience track that drives it in XP mode.
package progression

import (
	"context"
	"log/slog"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

// Precondition messages surfaced verbatim to callers.
const (
	MsgMaxLevel   = "already at maximum level"
	MsgIncomplete = "character must be complete"
)

// Service defines the progression operations
type Service interface {
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	AddXP(ctx context.Context, input *AddXPInput) (*AddXPOutput, error)
}

// LevelUpInput defines the input for a level-up
type LevelUpInput struct {
	CharacterID string
	// ClassSlug targets a class; empty means the primary class. A class
	// the character has no levels in yet starts at 1 (multiclassing).
	ClassSlug string
}

// FeatureGained describes one feature granted by a level-up.
type FeatureGained struct {
	Slug        string
	Name        string
	Description string
	Level       int
}

// LevelUpOutput defines the output for a level-up
type LevelUpOutput struct {
	Character      *entities.Character
	ClassSlug      string
	PreviousLevel  int
	NewLevel       int
	HPIncrease     int
	NewMaxHP       int
	FeaturesGained []FeatureGained
	SpellSlots     []rules.SlotView
	ASIPending     bool
}

// AddXPInput defines the input for adding experience
type AddXPInput struct {
	CharacterID string
	// Amount must not be negative; zero is a pure progress query.
	Amount    int
	AutoLevel bool
}

// AddXPOutput defines the output for adding experience
type AddXPOutput struct {
	Character         *entities.Character
	ExperiencePoints  int
	XPLevel           int
	NextLevelXP       int
	XPToNextLevel     int
	XPProgressPercent int
	LeveledUp         bool
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       catalog.Store
	Locker        *charlock.Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}
	return vb.Build()
}

type orchestrator struct {
	repo    characterrepo.Repository
	catalog catalog.Store
	locker  *charlock.Locker
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{
		repo:    cfg.CharacterRepo,
		catalog: cfg.Catalog,
		locker:  cfg.Locker,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// LevelUp advances the target class by one level: hit points, new
// features, recomputed spell slots, and an improvement slot when the
// new class level is on the improvement schedule. Everything persists
// in one write.
func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	result, err := o.applyLevelUp(char, input.ClassSlug)
	if err != nil {
		return nil, err
	}

	updated, err := o.repo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}
	result.Character = updated.Character

	slog.DebugContext(ctx, "leveled up character",
		"character_id", input.CharacterID,
		"class", result.ClassSlug,
		"new_level", result.NewLevel,
		"hp_increase", result.HPIncrease,
		"asi_pending", result.ASIPending)

	return result, nil
}

// applyLevelUp mutates the character in memory; the caller persists.
func (o *orchestrator) applyLevelUp(char *entities.Character, classSlug string) (*LevelUpOutput, error) {
	if missing := char.MissingForLevelUp(); len(missing) > 0 {
		return nil, errors.FailedPrecondition(MsgIncomplete).WithMeta("missing", missing)
	}
	if char.TotalLevel() >= rules.MaxLevel {
		return nil, errors.FailedPrecondition(MsgMaxLevel)
	}

	target := char.PrimaryClass()
	if classSlug != "" {
		target = char.Class(classSlug)
		if target == nil {
			// Starting a new class: verify it exists before adding the
			// pivot row.
			if _, err := o.catalog.Class(classSlug); err != nil {
				return nil, err
			}
			target = &entities.ClassLevel{
				ClassSlug: classSlug,
				Order:     len(char.Classes),
			}
			char.Classes = append(char.Classes, target)
		}
	}
	if target.Level >= rules.MaxLevel {
		return nil, errors.FailedPrecondition(MsgMaxLevel)
	}

	class, err := o.catalog.Class(target.ClassSlug)
	if err != nil {
		return nil, err
	}

	previousLevel := target.Level
	target.Level++

	hpGain, err := o.applyHPGain(char, class, target.Level == 1 && char.TotalLevel() == 1)
	if err != nil {
		return nil, err
	}

	gained := o.grantFeatures(char, class, target.Level)
	o.recalculateFeatureUses(char, class, target.Level)
	if err := syncSpellSlots(char, o.catalog); err != nil {
		return nil, err
	}

	asiPending := class.IsASILevel(target.Level)
	if asiPending {
		char.AsiChoicesRemaining++
	}

	return &LevelUpOutput{
		Character:      char,
		ClassSlug:      target.ClassSlug,
		PreviousLevel:  previousLevel,
		NewLevel:       target.Level,
		HPIncrease:     hpGain,
		NewMaxHP:       char.MaxHP,
		FeaturesGained: gained,
		SpellSlots:     slotViews(char),
		ASIPending:     asiPending,
	}, nil
}

// applyHPGain adds the average hit point gain to max and current HP.
// The very first character level grants the full hit die instead.
func (o *orchestrator) applyHPGain(char *entities.Character, class *catalog.Class, firstEver bool) (int, error) {
	conMod := 0
	if con, ok := char.AbilityScores.Get("CON"); ok {
		bonus := 0
		if char.RaceSlug != "" {
			race, err := o.catalog.Race(char.RaceSlug)
			if err != nil {
				return 0, err
			}
			bonus = race.AbilityBonuses["CON"]
		}
		conMod = rules.AbilityModifier(con + bonus)
	}

	var gain int
	if firstEver {
		gain = rules.FirstLevelHP(class.HitDie, conMod)
	} else {
		gain = rules.HitPointGain(class.HitDie, conMod)
	}

	perLevel, err := o.hpPerLevelBonus(char)
	if err != nil {
		return 0, err
	}
	gain += perLevel

	if char.HPMode == entities.HPModeCalculated {
		char.MaxHP += gain
	}
	char.CurrentHP += gain
	if char.CurrentHP > char.MaxHP {
		char.CurrentHP = char.MaxHP
	}
	return gain, nil
}

func (o *orchestrator) hpPerLevelBonus(char *entities.Character) (int, error) {
	bonus := 0
	if char.RaceSlug != "" {
		race, err := o.catalog.Race(char.RaceSlug)
		if err != nil {
			return 0, err
		}
		bonus += race.HPPerLevel
	}
	for _, slug := range char.Feats {
		feat, err := o.catalog.Feat(slug)
		if err != nil {
			return 0, err
		}
		bonus += feat.HPPerLevel
	}
	return bonus, nil
}

// grantFeatures adds the class features unlocked at exactly the new
// level, initializing limited-use counters from the class tables.
func (o *orchestrator) grantFeatures(char *entities.Character, class *catalog.Class, newLevel int) []FeatureGained {
	var gained []FeatureGained
	for _, feature := range class.FeaturesAt(newLevel) {
		if char.Feature(feature.Slug) != nil {
			continue
		}
		grant := &entities.FeatureGrant{
			FeatureSlug:   feature.Slug,
			ClassSlug:     class.Slug,
			LevelAcquired: newLevel,
			ResetsOn:      string(feature.ResetsOn),
		}
		if uses, ok := feature.UsesAt(newLevel); ok {
			max := uses
			grant.MaxUses = &max
			grant.UsesRemaining = uses
		}
		char.Features = append(char.Features, grant)
		gained = append(gained, FeatureGained{
			Slug:        feature.Slug,
			Name:        feature.Name,
			Description: feature.Description,
			Level:       feature.Level,
		})
	}
	return gained
}

// recalculateFeatureUses rescales existing counters for the leveled
// class, preserving how many uses were already spent.
func (o *orchestrator) recalculateFeatureUses(char *entities.Character, class *catalog.Class, newLevel int) {
	for _, grant := range char.Features {
		if grant.ClassSlug != class.Slug || grant.MaxUses == nil {
			continue
		}
		var spec *catalog.Feature
		for i := range class.Features {
			if class.Features[i].Slug == grant.FeatureSlug {
				spec = &class.Features[i]
				break
			}
		}
		if spec == nil {
			continue
		}
		newMax, ok := spec.UsesAt(newLevel)
		if !ok || newMax == *grant.MaxUses {
			continue
		}
		if newMax < 0 {
			// Became unlimited.
			*grant.MaxUses = -1
			grant.UsesRemaining = 0
			continue
		}
		spent := *grant.MaxUses - grant.UsesRemaining
		if spent < 0 {
			spent = 0
		}
		*grant.MaxUses = newMax
		grant.UsesRemaining = newMax - spent
		if grant.UsesRemaining < 0 {
			grant.UsesRemaining = 0
		}
	}
}

// AddXP accumulates experience and reports progress toward the next
// level. With auto_level set and the character in XP leveling mode,
// level-ups fire until the level matches the XP entitlement; milestone
// characters never auto-level.
func (o *orchestrator) AddXP(ctx context.Context, input *AddXPInput) (*AddXPOutput, error) {
	if input.Amount < 0 {
		vb := errors.NewValidationBuilder()
		vb.Fieldf("amount", "must not be negative, got %d", input.Amount)
		return nil, vb.Build()
	}

	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	char.ExperiencePoints += input.Amount
	progress := rules.ComputeXPProgress(char.ExperiencePoints)

	leveledUp := false
	if input.AutoLevel && char.LevelingMode == entities.LevelingXP && len(char.MissingForLevelUp()) == 0 {
		for progress.Level > char.TotalLevel() && char.TotalLevel() < rules.MaxLevel {
			if _, err := o.applyLevelUp(char, ""); err != nil {
				return nil, err
			}
			leveledUp = true
		}
	}

	updated, err := o.repo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "added experience",
		"character_id", input.CharacterID,
		"amount", input.Amount,
		"total_xp", updated.Character.ExperiencePoints,
		"xp_level", progress.Level,
		"leveled_up", leveledUp)

	return &AddXPOutput{
		Character:         updated.Character,
		ExperiencePoints:  updated.Character.ExperiencePoints,
		XPLevel:           progress.Level,
		NextLevelXP:       progress.NextLevelXP,
		XPToNextLevel:     progress.XPToNextLevel,
		XPProgressPercent: progress.ProgressPercent,
		LeveledUp:         leveledUp,
	}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	got, err := o.repo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return got.Character, nil
}
