package rest

import (
	"net/http"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/resources"
)

func (h *Handler) listHitDice(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.ListHitDice(r.Context(), &resources.ListHitDiceInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, hitDicePoolsToViews(out.Pools))
}

type spendHitDiceRequest struct {
	DieType  string `json:"die_type"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) spendHitDice(w http.ResponseWriter, r *http.Request) {
	var req spendHitDiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.resources.SpendHitDice(r.Context(), &resources.SpendHitDiceInput{
		CharacterID: r.PathValue("id"),
		DieType:     req.DieType,
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, hitDicePoolView(out.Pool))
}

type recoverHitDiceRequest struct {
	Quantity int `json:"quantity"`
}

type recoverHitDiceResponse struct {
	Recovered int               `json:"recovered"`
	Pools     []hitDicePoolView `json:"pools"`
}

func (h *Handler) recoverHitDice(w http.ResponseWriter, r *http.Request) {
	var req recoverHitDiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.resources.RecoverHitDice(r.Context(), &resources.RecoverHitDiceInput{
		CharacterID: r.PathValue("id"),
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, recoverHitDiceResponse{
		Recovered: out.Recovered,
		Pools:     hitDicePoolsToViews(out.Pools),
	})
}

func (h *Handler) listSpellSlots(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.ListSpellSlots(r.Context(), &resources.ListSpellSlotsInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, slotsToViews(out.Slots))
}

type useSpellSlotRequest struct {
	SpellLevel int    `json:"spell_level"`
	SlotType   string `json:"slot_type"`
}

func (h *Handler) useSpellSlot(w http.ResponseWriter, r *http.Request) {
	var req useSpellSlotRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.resources.UseSpellSlot(r.Context(), &resources.UseSpellSlotInput{
		CharacterID: r.PathValue("id"),
		SpellLevel:  req.SpellLevel,
		SlotType:    req.SlotType,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, slotView(out.Slot))
}

func (h *Handler) listFeatureUses(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.ListFeatureUses(r.Context(), &resources.ListFeatureUsesInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]featureUseView, 0, len(out.Features))
	for _, f := range out.Features {
		views = append(views, featureUseToView(f))
	}
	writeData(w, http.StatusOK, views)
}

func (h *Handler) useFeature(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.UseFeature(r.Context(), &resources.UseFeatureInput{
		CharacterID: r.PathValue("id"),
		FeatureSlug: r.PathValue("featureId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, featureUseToView(out.Feature))
}

func (h *Handler) resetFeature(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.ResetFeature(r.Context(), &resources.ResetFeatureInput{
		CharacterID: r.PathValue("id"),
		FeatureSlug: r.PathValue("featureId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, featureUseToView(out.Feature))
}

type shortRestResponse struct {
	PactMagicReset bool     `json:"pact_magic_reset"`
	FeaturesReset  []string `json:"features_reset"`
}

func (h *Handler) shortRest(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.ShortRest(r.Context(), &resources.ShortRestInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	featuresReset := out.FeaturesReset
	if featuresReset == nil {
		featuresReset = []string{}
	}
	writeData(w, http.StatusOK, shortRestResponse{
		PactMagicReset: out.PactMagicReset,
		FeaturesReset:  featuresReset,
	})
}

type longRestResponse struct {
	HPRestored        int      `json:"hp_restored"`
	HitDiceRecovered  int      `json:"hit_dice_recovered"`
	SpellSlotsReset   int      `json:"spell_slots_reset"`
	DeathSavesCleared bool     `json:"death_saves_cleared"`
	FeaturesReset     []string `json:"features_reset"`
}

func (h *Handler) longRest(w http.ResponseWriter, r *http.Request) {
	out, err := h.resources.LongRest(r.Context(), &resources.LongRestInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	featuresReset := out.FeaturesReset
	if featuresReset == nil {
		featuresReset = []string{}
	}
	writeData(w, http.StatusOK, longRestResponse{
		HPRestored:        out.HPRestored,
		HitDiceRecovered:  out.HitDiceRecovered,
		SpellSlotsReset:   out.SpellSlotsReset,
		DeathSavesCleared: out.DeathSavesCleared,
		FeaturesReset:     featuresReset,
	})
}
