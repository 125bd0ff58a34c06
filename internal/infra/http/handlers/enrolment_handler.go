package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type EnrolmentHandler struct {
	Reader Reader
	Create *usecase.CreateEnrolmentUseCase
	Update *usecase.UpdateEnrolmentUseCase
	Toggle *usecase.ToggleEnrolmentStatusUseCase
}

func NewEnrolmentHandler(reader Reader, ucs *usecase.UseCases) *EnrolmentHandler {
	return &EnrolmentHandler{
		Reader: reader,
		Create: ucs.CreateEnrolment,
		Update: ucs.UpdateEnrolment,
		Toggle: ucs.ToggleEnrolmentStatus,
	}
}

func (h *EnrolmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items := filterBy(h.Reader.Enrolments(), r.URL.Query().Get("status"), func(e entity.Enrolment) string {
		return string(e.Status)
	})
	writeJSON(w, http.StatusOK, items)
}

func (h *EnrolmentHandler) CreateEnrolment(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEnrolmentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	enrolment, err := h.Create.Execute(r.Context(), input)
	respond(w, "create_enrolment", http.StatusCreated, enrolment, err)
}

func (h *EnrolmentHandler) UpdateEnrolment(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateEnrolmentInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.EnrolmentID = chi.URLParam(r, "id")

	enrolment, err := h.Update.Execute(r.Context(), input)
	respond(w, "update_enrolment", http.StatusOK, enrolment, err)
}

func (h *EnrolmentHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	enrolment, err := h.Toggle.Execute(r.Context(), chi.URLParam(r, "id"))
	respond(w, "toggle_enrolment_status", http.StatusOK, enrolment, err)
}
