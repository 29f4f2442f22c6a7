package rest

import (
	"net/http"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/choices"
)

type pendingChoicesResponse struct {
	Choices []choiceView      `json:"choices"`
	Summary choiceSummaryView `json:"summary"`
}

func (h *Handler) listPendingChoices(w http.ResponseWriter, r *http.Request) {
	out, err := h.choices.ListPending(r.Context(), &choices.ListPendingInput{
		CharacterID: r.PathValue("id"),
		Type:        r.URL.Query().Get("type"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]choiceView, 0, len(out.Choices))
	for i := range out.Choices {
		views = append(views, choiceToView(&out.Choices[i]))
	}
	writeData(w, http.StatusOK, pendingChoicesResponse{
		Choices: views,
		Summary: choiceSummaryView(out.Summary),
	})
}

func (h *Handler) showChoice(w http.ResponseWriter, r *http.Request) {
	out, err := h.choices.Show(r.Context(), &choices.ShowInput{
		CharacterID: r.PathValue("id"),
		ChoiceID:    r.PathValue("choiceId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, choiceToView(out.Choice))
}

type resolveChoiceRequest struct {
	Selection []string `json:"selection"`
}

type resolveChoiceResponse struct {
	Character characterView `json:"character"`
	Choice    choiceView    `json:"choice"`
}

func (h *Handler) resolveChoice(w http.ResponseWriter, r *http.Request) {
	var req resolveChoiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.choices.Resolve(r.Context(), &choices.ResolveInput{
		CharacterID: r.PathValue("id"),
		ChoiceID:    r.PathValue("choiceId"),
		Selection:   req.Selection,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, resolveChoiceResponse{
		Character: characterToView(out.Character),
		Choice:    choiceToView(out.Choice),
	})
}

func (h *Handler) undoChoice(w http.ResponseWriter, r *http.Request) {
	out, err := h.choices.Undo(r.Context(), &choices.UndoInput{
		CharacterID: r.PathValue("id"),
		ChoiceID:    r.PathValue("choiceId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, characterToView(out.Character))
}
