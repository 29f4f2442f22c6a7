// Package resources tracks a character's consumable pools: hit dice,
// spell slots including pact magic, and limited-use features. It also
// applies the short and long rest reset rules.
package resources

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

// HitDicePool is one die size's worth of hit dice across all classes
// sharing that die.
type HitDicePool struct {
	DieType   string
	Max       int
	Spent     int
	Available int
}

// FeatureUse reports the remaining uses of one granted feature.
type FeatureUse struct {
	FeatureSlug   string
	ClassSlug     string
	MaxUses       *int
	UsesRemaining int
	ResetsOn      string
}

// ListHitDiceInput defines the input for listing hit dice pools
type ListHitDiceInput struct {
	CharacterID string
}

// ListHitDiceOutput defines the output for listing hit dice pools
type ListHitDiceOutput struct {
	Pools []HitDicePool
}

// SpendHitDiceInput defines the input for spending hit dice
type SpendHitDiceInput struct {
	CharacterID string
	DieType     string
	Quantity    int
}

// SpendHitDiceOutput defines the output for spending hit dice
type SpendHitDiceOutput struct {
	Character *entities.Character
	Pool      HitDicePool
}

// RecoverHitDiceInput defines the input for recovering hit dice
type RecoverHitDiceInput struct {
	CharacterID string
	// Quantity zero means the long-rest default: half the total maximum
	// rounded down, minimum one when any are spent.
	Quantity int
}

// RecoverHitDiceOutput defines the output for recovering hit dice
type RecoverHitDiceOutput struct {
	Character *entities.Character
	Recovered int
	Pools     []HitDicePool
}

// ListSpellSlotsInput defines the input for listing spell slots
type ListSpellSlotsInput struct {
	CharacterID string
}

// ListSpellSlotsOutput defines the output for listing spell slots
type ListSpellSlotsOutput struct {
	Slots []rules.SlotView
}

// UseSpellSlotInput defines the input for using a spell slot
type UseSpellSlotInput struct {
	CharacterID string
	SpellLevel  int
	// SlotType is "spell" or "pact"; empty means "spell".
	SlotType string
}

// UseSpellSlotOutput defines the output for using a spell slot
type UseSpellSlotOutput struct {
	Character *entities.Character
	Slot      rules.SlotView
}

// ListFeatureUsesInput defines the input for listing feature uses
type ListFeatureUsesInput struct {
	CharacterID string
}

// ListFeatureUsesOutput defines the output for listing feature uses
type ListFeatureUsesOutput struct {
	Features []FeatureUse
}

// UseFeatureInput defines the input for using a feature
type UseFeatureInput struct {
	CharacterID string
	FeatureSlug string
}

// UseFeatureOutput defines the output for using a feature
type UseFeatureOutput struct {
	Character *entities.Character
	Feature   FeatureUse
}

// ResetFeatureInput defines the input for resetting a feature pool
type ResetFeatureInput struct {
	CharacterID string
	FeatureSlug string
}

// ResetFeatureOutput defines the output for resetting a feature pool
type ResetFeatureOutput struct {
	Character *entities.Character
	Feature   FeatureUse
}

// ShortRestInput defines the input for taking a short rest
type ShortRestInput struct {
	CharacterID string
}

// ShortRestOutput defines the output for taking a short rest
type ShortRestOutput struct {
	Character      *entities.Character
	PactMagicReset bool
	FeaturesReset  []string
}

// LongRestInput defines the input for taking a long rest
type LongRestInput struct {
	CharacterID string
}

// LongRestOutput defines the output for taking a long rest
type LongRestOutput struct {
	Character         *entities.Character
	HPRestored        int
	HitDiceRecovered  int
	SpellSlotsReset   int
	DeathSavesCleared bool
	FeaturesReset     []string
}

// Config holds the dependencies for the resources orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       catalog.Store
	Locker        *charlock.Locker
}

// Validate checks that all required dependencies are present
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

// Service manages consumable resource pools and rest cycles.
type Service interface {
	ListHitDice(ctx context.Context, input *ListHitDiceInput) (*ListHitDiceOutput, error)
	SpendHitDice(ctx context.Context, input *SpendHitDiceInput) (*SpendHitDiceOutput, error)
	RecoverHitDice(ctx context.Context, input *RecoverHitDiceInput) (*RecoverHitDiceOutput, error)
	ListSpellSlots(ctx context.Context, input *ListSpellSlotsInput) (*ListSpellSlotsOutput, error)
	UseSpellSlot(ctx context.Context, input *UseSpellSlotInput) (*UseSpellSlotOutput, error)
	ListFeatureUses(ctx context.Context, input *ListFeatureUsesInput) (*ListFeatureUsesOutput, error)
	UseFeature(ctx context.Context, input *UseFeatureInput) (*UseFeatureOutput, error)
	ResetFeature(ctx context.Context, input *ResetFeatureInput) (*ResetFeatureOutput, error)
	ShortRest(ctx context.Context, input *ShortRestInput) (*ShortRestOutput, error)
	LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error)
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	catalog       catalog.Store
	locker        *charlock.Locker
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a resources orchestrator from the config
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		catalog:       cfg.Catalog,
		locker:        cfg.Locker,
	}, nil
}

func (o *orchestrator) ListHitDice(ctx context.Context, input *ListHitDiceInput) (*ListHitDiceOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	pools, err := o.hitDicePools(char)
	if err != nil {
		return nil, err
	}
	return &ListHitDiceOutput{Pools: pools}, nil
}

func (o *orchestrator) SpendHitDice(ctx context.Context, input *SpendHitDiceInput) (*SpendHitDiceOutput, error) {
	if input.Quantity < 1 {
		return nil, errors.NewValidationBuilder().
			Field("quantity", "must be at least 1").
			Build()
	}

	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	matching, err := o.classesWithDie(char, input.DieType)
	if err != nil {
		return nil, err
	}
	if len(matching) == 0 {
		return nil, errors.NewValidationBuilder().
			Fieldf("die_type", "character has no %s hit dice", input.DieType).
			Build()
	}

	available := 0
	for _, cl := range matching {
		available += cl.Level - cl.HitDiceSpent
	}
	if input.Quantity > available {
		return nil, errors.ResourceExhaustedf(
			"insufficient %s hit dice: have %d, need %d",
			input.DieType, available, input.Quantity).
			WithMeta("die_type", input.DieType).
			WithMeta("available", available)
	}

	remaining := input.Quantity
	for _, cl := range matching {
		free := cl.Level - cl.HitDiceSpent
		if free > remaining {
			free = remaining
		}
		cl.HitDiceSpent += free
		remaining -= free
		if remaining == 0 {
			break
		}
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "spent hit dice",
		"character_id", char.ID,
		"die_type", input.DieType,
		"quantity", input.Quantity)

	pool, err := o.hitDicePool(updated.Character, input.DieType)
	if err != nil {
		return nil, err
	}
	return &SpendHitDiceOutput{Character: updated.Character, Pool: pool}, nil
}

func (o *orchestrator) RecoverHitDice(ctx context.Context, input *RecoverHitDiceInput) (*RecoverHitDiceOutput, error) {
	if input.Quantity < 0 {
		return nil, errors.NewValidationBuilder().
			Field("quantity", "must not be negative").
			Build()
	}

	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	recovered := recoverHitDice(char, input.Quantity)

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "recovered hit dice",
		"character_id", char.ID,
		"recovered", recovered)

	pools, err := o.hitDicePools(updated.Character)
	if err != nil {
		return nil, err
	}
	return &RecoverHitDiceOutput{
		Character: updated.Character,
		Recovered: recovered,
		Pools:     pools,
	}, nil
}

func (o *orchestrator) ListSpellSlots(ctx context.Context, input *ListSpellSlotsInput) (*ListSpellSlotsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &ListSpellSlotsOutput{Slots: slotViews(char)}, nil
}

func (o *orchestrator) UseSpellSlot(ctx context.Context, input *UseSpellSlotInput) (*UseSpellSlotOutput, error) {
	slotType := input.SlotType
	if slotType == "" {
		slotType = entities.SlotTypeSpell
	}
	if slotType != entities.SlotTypeSpell && slotType != entities.SlotTypePact {
		return nil, errors.NewValidationBuilder().
			Field("slot_type", `must be "spell" or "pact"`).
			Build()
	}

	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	pool := char.Slot(slotType, input.SpellLevel)
	if pool == nil {
		return nil, errors.NotFoundf("no level %d %s slots", input.SpellLevel, slotType).
			WithMeta("slot_type", slotType).
			WithMeta("spell_level", input.SpellLevel)
	}
	if pool.Remaining() == 0 {
		return nil, errors.ResourceExhaustedf("no level %d %s slots remaining", input.SpellLevel, slotType).
			WithMeta("slot_type", slotType).
			WithMeta("spell_level", input.SpellLevel).
			WithMeta("max", pool.Max)
	}
	pool.Used++

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "used spell slot",
		"character_id", char.ID,
		"slot_type", slotType,
		"spell_level", input.SpellLevel)

	return &UseSpellSlotOutput{
		Character: updated.Character,
		Slot: rules.SlotView{
			Type:      slotType,
			Level:     pool.Level,
			Total:     pool.Max,
			Spent:     pool.Used,
			Available: pool.Remaining(),
		},
	}, nil
}

func (o *orchestrator) ListFeatureUses(ctx context.Context, input *ListFeatureUsesInput) (*ListFeatureUsesOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	features := make([]FeatureUse, 0, len(char.Features))
	for _, grant := range char.Features {
		if grant.MaxUses == nil {
			continue
		}
		features = append(features, featureUse(grant))
	}
	return &ListFeatureUsesOutput{Features: features}, nil
}

func (o *orchestrator) UseFeature(ctx context.Context, input *UseFeatureInput) (*UseFeatureOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	grant := char.Feature(input.FeatureSlug)
	if grant == nil {
		return nil, errors.NotFoundf("character does not have feature %q", input.FeatureSlug)
	}
	if grant.MaxUses == nil {
		return nil, errors.FailedPreconditionf("feature %q has no limited uses", input.FeatureSlug)
	}
	if *grant.MaxUses >= 0 {
		// Negative max means unlimited uses; those never deplete.
		if grant.UsesRemaining <= 0 {
			return nil, errors.ResourceExhaustedf("feature %q has no uses remaining", input.FeatureSlug).
				WithMeta("feature_slug", input.FeatureSlug).
				WithMeta("max_uses", *grant.MaxUses)
		}
		grant.UsesRemaining--
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "used feature",
		"character_id", char.ID,
		"feature", input.FeatureSlug,
		"uses_remaining", grant.UsesRemaining)

	return &UseFeatureOutput{Character: updated.Character, Feature: featureUse(grant)}, nil
}

func (o *orchestrator) ResetFeature(ctx context.Context, input *ResetFeatureInput) (*ResetFeatureOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	grant := char.Feature(input.FeatureSlug)
	if grant == nil {
		return nil, errors.NotFoundf("character does not have feature %q", input.FeatureSlug)
	}
	if grant.MaxUses == nil {
		return nil, errors.FailedPreconditionf("feature %q has no limited uses", input.FeatureSlug)
	}
	resetGrant(grant)

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	return &ResetFeatureOutput{Character: updated.Character, Feature: featureUse(grant)}, nil
}

func (o *orchestrator) ShortRest(ctx context.Context, input *ShortRestInput) (*ShortRestOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	pactReset := false
	for _, pool := range char.Slots {
		if pool.Type == entities.SlotTypePact && pool.Used > 0 {
			pool.Used = 0
			pactReset = true
		}
	}
	featuresReset := resetFeatures(char, catalog.ResetShortRest)

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "short rest taken",
		"character_id", char.ID,
		"pact_magic_reset", pactReset,
		"features_reset", len(featuresReset))

	return &ShortRestOutput{
		Character:      updated.Character,
		PactMagicReset: pactReset,
		FeaturesReset:  featuresReset,
	}, nil
}

func (o *orchestrator) LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	hpRestored := char.MaxHP - char.CurrentHP
	if hpRestored < 0 {
		hpRestored = 0
	}
	char.CurrentHP = char.MaxHP

	slotsReset := 0
	for _, pool := range char.Slots {
		if pool.Used > 0 {
			pool.Used = 0
			slotsReset++
		}
	}

	recovered := recoverHitDice(char, 0)

	deathSavesCleared := char.DeathSaves.Successes > 0 || char.DeathSaves.Failures > 0
	char.DeathSaves = entities.DeathSaves{}

	featuresReset := resetFeatures(char,
		catalog.ResetShortRest, catalog.ResetLongRest, catalog.ResetDawn)

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "long rest taken",
		"character_id", char.ID,
		"hp_restored", hpRestored,
		"hit_dice_recovered", recovered,
		"spell_slots_reset", slotsReset)

	return &LongRestOutput{
		Character:         updated.Character,
		HPRestored:        hpRestored,
		HitDiceRecovered:  recovered,
		SpellSlotsReset:   slotsReset,
		DeathSavesCleared: deathSavesCleared,
		FeaturesReset:     featuresReset,
	}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	output, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return output.Character, nil
}

// classesWithDie returns the class levels whose hit die matches the
// given die type, in acquisition order.
func (o *orchestrator) classesWithDie(char *entities.Character, dieType string) ([]*entities.ClassLevel, error) {
	var matching []*entities.ClassLevel
	for _, cl := range sortedClasses(char) {
		class, err := o.catalog.Class(cl.ClassSlug)
		if err != nil {
			return nil, err
		}
		if fmt.Sprintf("d%d", class.HitDie) == dieType {
			matching = append(matching, cl)
		}
	}
	return matching, nil
}

func (o *orchestrator) hitDicePools(char *entities.Character) ([]HitDicePool, error) {
	byDie := make(map[string]*HitDicePool)
	var order []string
	for _, cl := range sortedClasses(char) {
		class, err := o.catalog.Class(cl.ClassSlug)
		if err != nil {
			return nil, err
		}
		die := fmt.Sprintf("d%d", class.HitDie)
		pool, ok := byDie[die]
		if !ok {
			pool = &HitDicePool{DieType: die}
			byDie[die] = pool
			order = append(order, die)
		}
		pool.Max += cl.Level
		pool.Spent += cl.HitDiceSpent
	}
	pools := make([]HitDicePool, 0, len(order))
	for _, die := range order {
		pool := byDie[die]
		pool.Available = pool.Max - pool.Spent
		pools = append(pools, *pool)
	}
	return pools, nil
}

func (o *orchestrator) hitDicePool(char *entities.Character, dieType string) (HitDicePool, error) {
	pools, err := o.hitDicePools(char)
	if err != nil {
		return HitDicePool{}, err
	}
	for _, pool := range pools {
		if pool.DieType == dieType {
			return pool, nil
		}
	}
	return HitDicePool{DieType: dieType}, nil
}

// recoverHitDice restores up to quantity spent hit dice, walking class
// pools in acquisition order. Quantity zero applies the long-rest
// default of half the total maximum, minimum one when any are spent.
func recoverHitDice(char *entities.Character, quantity int) int {
	totalMax := 0
	totalSpent := 0
	for _, cl := range char.Classes {
		totalMax += cl.Level
		totalSpent += cl.HitDiceSpent
	}
	if quantity == 0 {
		quantity = totalMax / 2
		if quantity < 1 && totalSpent > 0 {
			quantity = 1
		}
	}
	if quantity > totalSpent {
		quantity = totalSpent
	}

	recovered := 0
	for _, cl := range sortedClasses(char) {
		if recovered == quantity {
			break
		}
		restore := cl.HitDiceSpent
		if restore > quantity-recovered {
			restore = quantity - recovered
		}
		cl.HitDiceSpent -= restore
		recovered += restore
	}
	return recovered
}

func resetFeatures(char *entities.Character, triggers ...catalog.ResetTiming) []string {
	var reset []string
	for _, grant := range char.Features {
		if grant.MaxUses == nil || !containsTrigger(triggers, grant.ResetsOn) {
			continue
		}
		if *grant.MaxUses >= 0 && grant.UsesRemaining < *grant.MaxUses {
			resetGrant(grant)
			reset = append(reset, grant.FeatureSlug)
		}
	}
	sort.Strings(reset)
	return reset
}

func resetGrant(grant *entities.FeatureGrant) {
	if grant.MaxUses != nil && *grant.MaxUses >= 0 {
		grant.UsesRemaining = *grant.MaxUses
	}
}

func containsTrigger(triggers []catalog.ResetTiming, resetsOn string) bool {
	for _, trigger := range triggers {
		if string(trigger) == resetsOn {
			return true
		}
	}
	return false
}

func featureUse(grant *entities.FeatureGrant) FeatureUse {
	return FeatureUse{
		FeatureSlug:   grant.FeatureSlug,
		ClassSlug:     grant.ClassSlug,
		MaxUses:       grant.MaxUses,
		UsesRemaining: grant.UsesRemaining,
		ResetsOn:      grant.ResetsOn,
	}
}

func sortedClasses(char *entities.Character) []*entities.ClassLevel {
	classes := make([]*entities.ClassLevel, len(char.Classes))
	copy(classes, char.Classes)
	sort.Slice(classes, func(i, j int) bool { return classes[i].Order < classes[j].Order })
	return classes
}

func slotViews(char *entities.Character) []rules.SlotView {
	views := make([]rules.SlotView, 0, len(char.Slots))
	for _, pool := range char.Slots {
		views = append(views, rules.SlotView{
			Type:      pool.Type,
			Level:     pool.Level,
			Total:     pool.Max,
			Spent:     pool.Used,
			Available: pool.Remaining(),
		})
	}
	return views
}
