// Package character exposes the character lifecycle: create, read and
// delete, derived stat reads, hit point and death save management, and
// revival. Progression, choices and resource pools live in their own
// orchestrators.
package character

import (
	"context"
	"log/slog"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/idgen"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

// CreateInput defines the input for creating a character
type CreateInput struct {
	PlayerID   string
	Name       string
	RaceSlug   string
	ClassSlug  string
	Background string
	Alignment  string

	AbilityScores entities.AbilityScores

	// HPMode defaults to calculated, LevelingMode to xp.
	HPMode       entities.HPMode
	LevelingMode entities.LevelingMode
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing a player's characters
type ListInput struct {
	PlayerID string
}

// ListOutput defines the output for listing a player's characters
type ListOutput struct {
	Characters []*entities.Character
}

// GetStatsInput defines the input for reading derived stats
type GetStatsInput struct {
	CharacterID string
}

// GetStatsOutput defines the output for reading derived stats
type GetStatsOutput struct {
	Stats *rules.DerivedStats
}

// UpdateHitPointsInput patches the character's hit point state. Nil
// fields are left unchanged. MaxHP is only writable when the character
// is in manual mode, counting a mode switch in the same request.
type UpdateHitPointsInput struct {
	CharacterID string
	CurrentHP   *int
	TempHP      *int
	MaxHP       *int
	HPMode      *entities.HPMode
}

// UpdateHitPointsOutput defines the output for a hit point update
type UpdateHitPointsOutput struct {
	Character *entities.Character
}

// DeathSaveResult is the outcome of one death saving throw.
type DeathSaveResult string

// Death save results
const (
	DeathSaveSuccess DeathSaveResult = "success"
	DeathSaveFailure DeathSaveResult = "failure"
)

// RecordDeathSaveInput defines the input for recording a death save
type RecordDeathSaveInput struct {
	CharacterID string
	Result      DeathSaveResult
}

// RecordDeathSaveOutput defines the output for recording a death save
type RecordDeathSaveOutput struct {
	Character  *entities.Character
	Successes  int
	Failures   int
	Dead       bool
	Stabilized bool
}

// ReviveInput defines the input for reviving a downed character
type ReviveInput struct {
	CharacterID string
	// HitPoints zero means the default of 1.
	HitPoints int
	// ClearExhaustion nil means true.
	ClearExhaustion *bool
	Source          string
}

// ReviveOutput defines the output for reviving a character
type ReviveOutput struct {
	Character *entities.Character
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       catalog.Store
	Locker        *charlock.Locker
	IDGenerator   idgen.Generator
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Service manages character lifecycle and hit point state.
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
	UpdateHitPoints(ctx context.Context, input *UpdateHitPointsInput) (*UpdateHitPointsOutput, error)
	RecordDeathSave(ctx context.Context, input *RecordDeathSaveInput) (*RecordDeathSaveOutput, error)
	Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error)
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	catalog       catalog.Store
	locker        *charlock.Locker
	idGenerator   idgen.Generator
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a character orchestrator from the config
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
		idGenerator:   cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.RaceSlug != "" {
		if _, err := o.catalog.Race(input.RaceSlug); err != nil {
			return nil, err
		}
	}

	char := &entities.Character{
		ID:            o.idGenerator.Generate(),
		PlayerID:      input.PlayerID,
		Name:          input.Name,
		RaceSlug:      input.RaceSlug,
		Background:    input.Background,
		Alignment:     input.Alignment,
		AbilityScores: input.AbilityScores,
		HPMode:        input.HPMode,
		LevelingMode:  input.LevelingMode,
	}
	if char.HPMode == "" {
		char.HPMode = entities.HPModeCalculated
	}
	if char.LevelingMode == "" {
		char.LevelingMode = entities.LevelingXP
	}

	if input.ClassSlug != "" {
		if _, err := o.catalog.Class(input.ClassSlug); err != nil {
			return nil, err
		}
		char.Classes = []*entities.ClassLevel{
			{ClassSlug: input.ClassSlug, Level: 1, Primary: true, Order: 0},
		}
		if char.HPMode == entities.HPModeCalculated && char.AbilityScores.Complete() {
			maxHP, err := rules.MaxHPForClasses(char, o.catalog)
			if err != nil {
				return nil, err
			}
			char.MaxHP = maxHP
			char.CurrentHP = maxHP
		}
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created character",
		"character_id", created.Character.ID,
		"player_id", created.Character.PlayerID,
		"class", input.ClassSlug,
		"race", input.RaceSlug)

	return &CreateOutput{Character: created.Character}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "deleted character", "character_id", input.CharacterID)
	return &DeleteOutput{}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	output, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Characters: output.Characters}, nil
}

func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	stats, err := rules.ComputeStats(char, o.catalog)
	if err != nil {
		return nil, err
	}
	return &GetStatsOutput{Stats: stats}, nil
}

func (o *orchestrator) UpdateHitPoints(ctx context.Context, input *UpdateHitPointsInput) (*UpdateHitPointsOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	mode := char.HPMode
	if input.HPMode != nil {
		if *input.HPMode != entities.HPModeCalculated && *input.HPMode != entities.HPModeManual {
			return nil, errors.NewValidationBuilder().
				Field("hp_mode", `must be "calculated" or "manual"`).
				Build()
		}
		mode = *input.HPMode
	}
	if input.MaxHP != nil && mode != entities.HPModeManual {
		return nil, errors.NewValidationBuilder().
			Field("max_hit_points", "only writable in manual mode").
			Build()
	}
	if input.MaxHP != nil && *input.MaxHP < 1 {
		return nil, errors.NewValidationBuilder().
			Field("max_hit_points", "must be at least 1").
			Build()
	}
	if input.TempHP != nil && *input.TempHP < 0 {
		return nil, errors.NewValidationBuilder().
			Field("temp_hit_points", "must not be negative").
			Build()
	}

	wasDown := char.CurrentHP == 0

	char.HPMode = mode
	if input.MaxHP != nil {
		char.MaxHP = *input.MaxHP
	}
	if input.CurrentHP != nil {
		char.CurrentHP = *input.CurrentHP
	}
	if input.TempHP != nil {
		char.TempHP = *input.TempHP
	}
	if char.CurrentHP > char.MaxHP {
		char.CurrentHP = char.MaxHP
	}
	if char.CurrentHP < 0 {
		char.CurrentHP = 0
	}
	if wasDown && char.CurrentHP > 0 {
		char.DeathSaves = entities.DeathSaves{}
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "updated hit points",
		"character_id", char.ID,
		"current_hp", char.CurrentHP,
		"max_hp", char.MaxHP,
		"hp_mode", char.HPMode)

	return &UpdateHitPointsOutput{Character: updated.Character}, nil
}

func (o *orchestrator) RecordDeathSave(ctx context.Context, input *RecordDeathSaveInput) (*RecordDeathSaveOutput, error) {
	if input.Result != DeathSaveSuccess && input.Result != DeathSaveFailure {
		return nil, errors.NewValidationBuilder().
			Field("result", `must be "success" or "failure"`).
			Build()
	}

	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if char.CurrentHP > 0 {
		return nil, errors.FailedPrecondition("character is not at 0 hit points")
	}
	if char.DeathSaves.Failures >= 3 {
		return nil, errors.FailedPrecondition("character is dead")
	}

	stabilized := false
	switch input.Result {
	case DeathSaveSuccess:
		char.DeathSaves.Successes++
		if char.DeathSaves.Successes >= 3 {
			// Three successes stabilize the character and wipe the tally.
			char.DeathSaves = entities.DeathSaves{}
			stabilized = true
		}
	case DeathSaveFailure:
		char.DeathSaves.Failures++
	}
	dead := char.DeathSaves.Failures >= 3

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	if dead {
		slog.WarnContext(ctx, "character died", "character_id", char.ID)
	}

	return &RecordDeathSaveOutput{
		Character:  updated.Character,
		Successes:  updated.Character.DeathSaves.Successes,
		Failures:   updated.Character.DeathSaves.Failures,
		Dead:       dead,
		Stabilized: stabilized,
	}, nil
}

func (o *orchestrator) Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error) {
	if input.HitPoints < 0 {
		return nil, errors.NewValidationBuilder().
			Field("hit_points", "must not be negative").
			Build()
	}

	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if char.CurrentHP > 0 {
		return nil, errors.FailedPrecondition("character is not at 0 hit points")
	}

	hp := input.HitPoints
	if hp == 0 {
		hp = 1
	}
	if hp > char.MaxHP {
		hp = char.MaxHP
	}
	if hp < 1 {
		hp = 1
	}

	char.CurrentHP = hp
	char.DeathSaves = entities.DeathSaves{}
	if input.ClearExhaustion == nil || *input.ClearExhaustion {
		char.Exhaustion = 0
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "revived character",
		"character_id", char.ID,
		"hit_points", hp,
		"source", input.Source)

	return &ReviveOutput{Character: updated.Character}, nil
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
