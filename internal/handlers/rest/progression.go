package rest

import (
	"net/http"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/progression"
)

type levelUpRequest struct {
	Class string `json:"class"`
}

type featureGainedView struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level"`
}

type levelUpResponse struct {
	Class          string              `json:"class"`
	PreviousLevel  int                 `json:"previous_level"`
	NewLevel       int                 `json:"new_level"`
	HPIncrease     int                 `json:"hp_increase"`
	NewMaxHP       int                 `json:"new_max_hp"`
	FeaturesGained []featureGainedView `json:"features_gained"`
	SpellSlots     []slotView          `json:"spell_slots"`
	ASIPending     bool                `json:"asi_pending"`
}

func (h *Handler) levelUp(w http.ResponseWriter, r *http.Request) {
	var req levelUpRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.progression.LevelUp(r.Context(), &progression.LevelUpInput{
		CharacterID: r.PathValue("id"),
		ClassSlug:   req.Class,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	gained := make([]featureGainedView, 0, len(out.FeaturesGained))
	for _, f := range out.FeaturesGained {
		gained = append(gained, featureGainedView(f))
	}
	writeData(w, http.StatusOK, levelUpResponse{
		Class:          out.ClassSlug,
		PreviousLevel:  out.PreviousLevel,
		NewLevel:       out.NewLevel,
		HPIncrease:     out.HPIncrease,
		NewMaxHP:       out.NewMaxHP,
		FeaturesGained: gained,
		SpellSlots:     slotsToViews(out.SpellSlots),
		ASIPending:     out.ASIPending,
	})
}

type addXPRequest struct {
	Amount    int  `json:"amount"`
	AutoLevel bool `json:"auto_level"`
}

type addXPResponse struct {
	ExperiencePoints  int  `json:"experience_points"`
	XPLevel           int  `json:"xp_level"`
	NextLevelXP       int  `json:"next_level_xp"`
	XPToNextLevel     int  `json:"xp_to_next_level"`
	XPProgressPercent int  `json:"xp_progress_percent"`
	LeveledUp         bool `json:"leveled_up"`
}

func (h *Handler) addXP(w http.ResponseWriter, r *http.Request) {
	var req addXPRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.progression.AddXP(r.Context(), &progression.AddXPInput{
		CharacterID: r.PathValue("id"),
		Amount:      req.Amount,
		AutoLevel:   req.AutoLevel,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, addXPResponse{
		ExperiencePoints:  out.ExperiencePoints,
		XPLevel:           out.XPLevel,
		NextLevelXP:       out.NextLevelXP,
		XPToNextLevel:     out.XPToNextLevel,
		XPProgressPercent: out.XPProgressPercent,
		LeveledUp:         out.LeveledUp,
	})
}
