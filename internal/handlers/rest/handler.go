// Package rest exposes the rules engine over a JSON HTTP API. Handlers
// decode requests, call the orchestrators and encode responses; no
// domain logic lives here.
package rest

import (
	"net/http"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	characterorch "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/choices"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/progression"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/resources"
)

// Config holds the orchestrator dependencies for the HTTP handler
type Config struct {
	CharacterService   characterorch.Service
	ChoiceService      choices.Service
	ProgressionService progression.Service
	ResourceService    resources.Service
}

// Validate checks that all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.ChoiceService == nil {
		vb.RequiredField("ChoiceService")
	}
	if c.ProgressionService == nil {
		vb.RequiredField("ProgressionService")
	}
	if c.ResourceService == nil {
		vb.RequiredField("ResourceService")
	}
	return vb.Build()
}

// Handler routes the JSON API.
type Handler struct {
	characters  characterorch.Service
	choices     choices.Service
	progression progression.Service
	resources   resources.Service
}

// New creates a handler from the config
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{
		characters:  cfg.CharacterService,
		choices:     cfg.ChoiceService,
		progression: cfg.ProgressionService,
		resources:   cfg.ResourceService,
	}, nil
}

// Routes builds the ServeMux with every API route registered.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /characters", h.createCharacter)
	mux.HandleFunc("GET /characters", h.listCharacters)
	mux.HandleFunc("GET /characters/{id}", h.getCharacter)
	mux.HandleFunc("DELETE /characters/{id}", h.deleteCharacter)
	mux.HandleFunc("GET /characters/{id}/stats", h.getStats)
	mux.HandleFunc("PATCH /characters/{id}/hit-points", h.updateHitPoints)
	mux.HandleFunc("POST /characters/{id}/death-saves", h.recordDeathSave)
	mux.HandleFunc("POST /characters/{id}/revive", h.revive)

	mux.HandleFunc("GET /characters/{id}/pending-choices", h.listPendingChoices)
	mux.HandleFunc("GET /characters/{id}/choices/{choiceId}", h.showChoice)
	mux.HandleFunc("POST /characters/{id}/choices/{choiceId}", h.resolveChoice)
	mux.HandleFunc("DELETE /characters/{id}/choices/{choiceId}", h.undoChoice)

	mux.HandleFunc("POST /characters/{id}/level-up", h.levelUp)
	mux.HandleFunc("POST /characters/{id}/xp", h.addXP)

	mux.HandleFunc("GET /characters/{id}/hit-dice", h.listHitDice)
	mux.HandleFunc("POST /characters/{id}/hit-dice/spend", h.spendHitDice)
	mux.HandleFunc("POST /characters/{id}/hit-dice/recover", h.recoverHitDice)
	mux.HandleFunc("GET /characters/{id}/spell-slots", h.listSpellSlots)
	mux.HandleFunc("POST /characters/{id}/spell-slots/use", h.useSpellSlot)
	mux.HandleFunc("GET /characters/{id}/feature-uses", h.listFeatureUses)
	mux.HandleFunc("POST /characters/{id}/features/{featureId}/use", h.useFeature)
	mux.HandleFunc("POST /characters/{id}/features/{featureId}/reset", h.resetFeature)
	mux.HandleFunc("POST /characters/{id}/short-rest", h.shortRest)
	mux.HandleFunc("POST /characters/{id}/long-rest", h.longRest)

	return mux
}
