package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type InternshipHandler struct {
	Reader Reader
	Hours  *usecase.LogInternshipHoursUseCase
	Mentor *usecase.AssignMentorUseCase
}

func NewInternshipHandler(reader Reader, ucs *usecase.UseCases) *InternshipHandler {
	return &InternshipHandler{
		Reader: reader,
		Hours:  ucs.LogInternshipHours,
		Mentor: ucs.AssignMentor,
	}
}

func (h *InternshipHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Reader.Placements())
}

func (h *InternshipHandler) LogHours(w http.ResponseWriter, r *http.Request) {
	var input usecase.LogInternshipHoursInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.PlacementID = chi.URLParam(r, "id")

	placement, err := h.Hours.Execute(r.Context(), input)
	respond(w, "log_internship_hours", http.StatusOK, placement, err)
}

func (h *InternshipHandler) AssignMentor(w http.ResponseWriter, r *http.Request) {
	var input usecase.AssignMentorInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.PlacementID = chi.URLParam(r, "id")

	placement, err := h.Mentor.Execute(r.Context(), input)
	respond(w, "assign_mentor", http.StatusOK, placement, err)
}
