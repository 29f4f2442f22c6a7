package rest

import (
	"net/http"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	characterorch "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/character"
)

type createCharacterRequest struct {
	PlayerID      string          `json:"player_id"`
	Name          string          `json:"name"`
	Race          string          `json:"race"`
	Class         string          `json:"class"`
	Background    string          `json:"background"`
	Alignment     string          `json:"alignment"`
	AbilityScores map[string]*int `json:"ability_scores"`
	HPMode        string          `json:"hp_mode"`
	LevelingMode  string          `json:"leveling_mode"`
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	scores := entities.AbilityScores{
		Strength:     req.AbilityScores["strength"],
		Dexterity:    req.AbilityScores["dexterity"],
		Constitution: req.AbilityScores["constitution"],
		Intelligence: req.AbilityScores["intelligence"],
		Wisdom:       req.AbilityScores["wisdom"],
		Charisma:     req.AbilityScores["charisma"],
	}

	out, err := h.characters.Create(r.Context(), &characterorch.CreateInput{
		PlayerID:      req.PlayerID,
		Name:          req.Name,
		RaceSlug:      req.Race,
		ClassSlug:     req.Class,
		Background:    req.Background,
		Alignment:     req.Alignment,
		AbilityScores: scores,
		HPMode:        entities.HPMode(req.HPMode),
		LevelingMode:  entities.LevelingMode(req.LevelingMode),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, characterToView(out.Character))
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.Get(r.Context(), &characterorch.GetInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, characterToView(out.Character))
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	_, err := h.characters.Delete(r.Context(), &characterorch.DeleteInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.List(r.Context(), &characterorch.ListInput{
		PlayerID: r.URL.Query().Get("player_id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]characterView, 0, len(out.Characters))
	for _, char := range out.Characters {
		views = append(views, characterToView(char))
	}
	writeData(w, http.StatusOK, views)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.GetStats(r.Context(), &characterorch.GetStatsInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, statsToView(out.Stats))
}

type updateHitPointsRequest struct {
	CurrentHP *int    `json:"current_hit_points"`
	TempHP    *int    `json:"temp_hit_points"`
	MaxHP     *int    `json:"max_hit_points"`
	HPMode    *string `json:"hp_mode"`
}

func (h *Handler) updateHitPoints(w http.ResponseWriter, r *http.Request) {
	var req updateHitPointsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := &characterorch.UpdateHitPointsInput{
		CharacterID: r.PathValue("id"),
		CurrentHP:   req.CurrentHP,
		TempHP:      req.TempHP,
		MaxHP:       req.MaxHP,
	}
	if req.HPMode != nil {
		mode := entities.HPMode(*req.HPMode)
		input.HPMode = &mode
	}

	out, err := h.characters.UpdateHitPoints(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, characterToView(out.Character))
}

type deathSaveRequest struct {
	Result string `json:"result"`
}

type deathSaveResponse struct {
	Successes  int  `json:"successes"`
	Failures   int  `json:"failures"`
	Dead       bool `json:"dead"`
	Stabilized bool `json:"stabilized"`
}

func (h *Handler) recordDeathSave(w http.ResponseWriter, r *http.Request) {
	var req deathSaveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.characters.RecordDeathSave(r.Context(), &characterorch.RecordDeathSaveInput{
		CharacterID: r.PathValue("id"),
		Result:      characterorch.DeathSaveResult(req.Result),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, deathSaveResponse{
		Successes:  out.Successes,
		Failures:   out.Failures,
		Dead:       out.Dead,
		Stabilized: out.Stabilized,
	})
}

type reviveRequest struct {
	HitPoints       int    `json:"hit_points"`
	ClearExhaustion *bool  `json:"clear_exhaustion"`
	Source          string `json:"source"`
}

func (h *Handler) revive(w http.ResponseWriter, r *http.Request) {
	var req reviveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.characters.Revive(r.Context(), &characterorch.ReviveInput{
		CharacterID:     r.PathValue("id"),
		HitPoints:       req.HitPoints,
		ClearExhaustion: req.ClearExhaustion,
		Source:          req.Source,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, characterToView(out.Character))
}
