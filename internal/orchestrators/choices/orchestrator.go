package choices

import (
	"context"
	"log/slog"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/clock"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
)

// Service defines the choice resolution operations
type Service interface {
	ListPending(ctx context.Context, input *ListPendingInput) (*ListPendingOutput, error)
	Show(ctx context.Context, input *ShowInput) (*ShowOutput, error)
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)
}

// ListPendingInput defines the input for listing pending choices
type ListPendingInput struct {
	CharacterID string
	// Type filters to a single choice type when set.
	Type string
}

// Summary aggregates pending choice counts.
type Summary struct {
	Total    int
	Required int
	Optional int
	ByType   map[string]int
	BySource map[string]int
}

// ListPendingOutput defines the output for listing pending choices
type ListPendingOutput struct {
	Choices []Choice
	Summary Summary
}

// ShowInput defines the input for showing one choice
type ShowInput struct {
	CharacterID string
	ChoiceID    string
}

// ShowOutput defines the output for showing one choice
type ShowOutput struct {
	Choice *Choice
}

// ResolveInput defines the input for resolving a choice
type ResolveInput struct {
	CharacterID string
	ChoiceID    string
	Selection   []string
}

// ResolveOutput defines the output for resolving a choice
type ResolveOutput struct {
	Character *entities.Character
	Choice    *Choice
}

// UndoInput defines the input for undoing a resolved choice
type UndoInput struct {
	CharacterID string
	ChoiceID    string
}

// UndoOutput defines the output for undoing a resolved choice
type UndoOutput struct {
	Character *entities.Character
}

// Config holds the dependencies for the choices orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       catalog.Store
	Registry      *Registry
	Locker        *charlock.Locker
	Clock         clock.Clock
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
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}
	return vb.Build()
}

type orchestrator struct {
	repo     characterrepo.Repository
	catalog  catalog.Store
	registry *Registry
	locker   *charlock.Locker
	clock    clock.Clock
}

// NewOrchestrator creates a new choices orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &orchestrator{
		repo:     cfg.CharacterRepo,
		catalog:  cfg.Catalog,
		registry: cfg.Registry,
		locker:   cfg.Locker,
		clock:    c,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// ListPending materializes every unresolved choice from the character's
// current grants. A character with no applicable handlers gets an empty
// list, not an error.
func (o *orchestrator) ListPending(ctx context.Context, input *ListPendingInput) (*ListPendingOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	handlers := o.registry.Handlers()
	if input.Type != "" {
		h, ok := o.registry.Get(input.Type)
		if !ok {
			handlers = nil
		} else {
			handlers = []Handler{h}
		}
	}

	out := &ListPendingOutput{
		Choices: []Choice{},
		Summary: Summary{ByType: map[string]int{}, BySource: map[string]int{}},
	}
	for _, h := range handlers {
		live, err := h.Pending(char, o.catalog)
		if err != nil {
			return nil, err
		}
		for _, choice := range live {
			if choice.Resolved {
				continue
			}
			out.Choices = append(out.Choices, choice)
			out.Summary.Total++
			if choice.Required {
				out.Summary.Required++
			} else {
				out.Summary.Optional++
			}
			out.Summary.ByType[choice.ID.Type]++
			out.Summary.BySource[choice.ID.Source]++
		}
	}
	return out, nil
}

// Show returns one live choice, resolved or not.
func (o *orchestrator) Show(ctx context.Context, input *ShowInput) (*ShowOutput, error) {
	_, _, choice, err := o.findChoice(ctx, input.CharacterID, input.ChoiceID)
	if err != nil {
		return nil, err
	}
	return &ShowOutput{Choice: choice}, nil
}

// Resolve validates a selection and applies its effects. A different
// prior selection for the same choice key is fully reversed first; the
// replacement is persisted in one write so both land or neither does.
// Re-submitting the current selection is rejected as already selected.
func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, handler, choice, err := o.findChoice(ctx, input.CharacterID, input.ChoiceID)
	if err != nil {
		return nil, err
	}

	if choice.Resolved && sameSelection(choice.Selection, input.Selection) {
		return nil, errors.AlreadyExistsf("selection already taken for choice %s", input.ChoiceID).
			WithMeta("choice_id", input.ChoiceID)
	}

	// Reverse before validating so the replacement is judged against the
	// state it would actually apply to. Nothing is persisted until the
	// final Update, so a failed validation discards the reversal too.
	if choice.Resolved {
		if err := handler.Reverse(char, choice, choice.Selection, o.catalog); err != nil {
			return nil, err
		}
	}
	if err := handler.Validate(char, choice, input.Selection); err != nil {
		return nil, err
	}
	if err := handler.Apply(char, choice, input.Selection, o.catalog); err != nil {
		return nil, err
	}

	record := &entities.ResolvedChoice{
		ChoiceID:   choice.ID.String(),
		Type:       choice.ID.Type,
		Selections: input.Selection,
		ResolvedAt: o.clock.Now().Unix(),
	}
	replaced := false
	for i, rc := range char.Choices {
		if rc.ChoiceID == record.ChoiceID {
			char.Choices[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		char.Choices = append(char.Choices, record)
	}

	updated, err := o.repo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "resolved choice",
		"character_id", input.CharacterID,
		"choice_id", input.ChoiceID,
		"selection", input.Selection,
		"replaced", replaced)

	resolved := *choice
	resolved.Resolved = true
	resolved.Selection = input.Selection
	return &ResolveOutput{Character: updated.Character, Choice: &resolved}, nil
}

// Undo reverses a resolved choice's effects and removes its record.
func (o *orchestrator) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	unlock := o.locker.Lock(input.CharacterID)
	defer unlock()

	char, handler, choice, err := o.findChoice(ctx, input.CharacterID, input.ChoiceID)
	if err != nil {
		return nil, err
	}
	if !choice.Resolved {
		return nil, errors.NotFoundf("choice %s is not resolved", input.ChoiceID).
			WithMeta("choice_id", input.ChoiceID)
	}

	if err := handler.Reverse(char, choice, choice.Selection, o.catalog); err != nil {
		return nil, err
	}
	kept := char.Choices[:0]
	for _, rc := range char.Choices {
		if rc.ChoiceID != choice.ID.String() {
			kept = append(kept, rc)
		}
	}
	char.Choices = kept

	updated, err := o.repo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "undid choice",
		"character_id", input.CharacterID,
		"choice_id", input.ChoiceID)

	return &UndoOutput{Character: updated.Character}, nil
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

// findChoice loads the character and locates the live choice for the
// given ID. Unregistered types and IDs with no matching live grant are
// both not-found outcomes carrying the offending choice ID.
func (o *orchestrator) findChoice(ctx context.Context, characterID, choiceID string) (*entities.Character, Handler, *Choice, error) {
	id, err := ParseChoiceID(choiceID)
	if err != nil {
		return nil, nil, nil, err
	}
	handler, ok := o.registry.Get(id.Type)
	if !ok {
		return nil, nil, nil, errors.NotFoundf("no handler registered for choice type %s", id.Type).
			WithMeta("choice_id", choiceID)
	}
	char, err := o.getCharacter(ctx, characterID)
	if err != nil {
		return nil, nil, nil, err
	}
	live, err := handler.Pending(char, o.catalog)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := range live {
		if live[i].ID == id {
			return char, handler, &live[i], nil
		}
	}
	return nil, nil, nil, errors.NotFoundf("choice %s not found", choiceID).
		WithMeta("choice_id", choiceID)
}
