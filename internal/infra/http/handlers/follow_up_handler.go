package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type FollowUpHandler struct {
	Reader  Reader
	LogCall *usecase.LogFollowUpCallUseCase
	Convert *usecase.ConvertFollowUpUseCase
	Lost    *usecase.MarkFollowUpLostUseCase
}

func NewFollowUpHandler(reader Reader, ucs *usecase.UseCases) *FollowUpHandler {
	return &FollowUpHandler{
		Reader:  reader,
		LogCall: ucs.LogFollowUpCall,
		Convert: ucs.ConvertFollowUp,
		Lost:    ucs.MarkFollowUpLost,
	}
}

func (h *FollowUpHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := filterBy(h.Reader.FollowUps(), q.Get("status"), func(f entity.SalesFollowUp) string {
		return string(f.FollowUpStatus)
	})
	items = filterBy(items, q.Get("owner"), func(f entity.SalesFollowUp) string {
		return f.Owner
	})
	writeJSON(w, http.StatusOK, items)
}

func (h *FollowUpHandler) LogFollowUpCall(w http.ResponseWriter, r *http.Request) {
	var input usecase.LogFollowUpCallInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.FollowUpID = chi.URLParam(r, "id")

	followUp, err := h.LogCall.Execute(r.Context(), input)
	respond(w, "log_follow_up_call", http.StatusOK, followUp, err)
}

// ConvertToEnrolment handles POST /follow-ups/{id}/convert.
func (h *FollowUpHandler) ConvertToEnrolment(w http.ResponseWriter, r *http.Request) {
	out, err := h.Convert.Execute(r.Context(), chi.URLParam(r, "id"))
	respond(w, "convert_follow_up", http.StatusCreated, out, err)
}

func (h *FollowUpHandler) MarkLost(w http.ResponseWriter, r *http.Request) {
	followUp, err := h.Lost.Execute(r.Context(), chi.URLParam(r, "id"))
	respond(w, "mark_follow_up_lost", http.StatusOK, followUp, err)
}
