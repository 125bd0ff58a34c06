package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type ClassHandler struct {
	Reader Reader
	Edit   *usecase.EditClassSessionUseCase
	Assign *usecase.AssignStudentsUseCase
}

func NewClassHandler(reader Reader, ucs *usecase.UseCases) *ClassHandler {
	return &ClassHandler{
		Reader: reader,
		Edit:   ucs.EditClassSession,
		Assign: ucs.AssignStudents,
	}
}

func (h *ClassHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Reader.Classes())
}

func (h *ClassHandler) EditClass(w http.ResponseWriter, r *http.Request) {
	var input usecase.EditClassSessionInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.ClassID = chi.URLParam(r, "id")

	session, err := h.Edit.Execute(r.Context(), input)
	respond(w, "edit_class_session", http.StatusOK, session, err)
}

func (h *ClassHandler) AssignStudents(w http.ResponseWriter, r *http.Request) {
	var input usecase.AssignStudentsInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.ClassID = chi.URLParam(r, "id")

	out, err := h.Assign.Execute(r.Context(), input)
	respondUncommitted(w, "assign_students", http.StatusOK, out, err)
}
