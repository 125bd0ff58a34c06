package handlers

import (
	"net/http"

	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type DashboardHandler struct {
	Summary *usecase.DashboardUseCase
}

func NewDashboardHandler(ucs *usecase.UseCases) *DashboardHandler {
	return &DashboardHandler{Summary: ucs.Dashboard}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	out, err := h.Summary.Execute(r.Context())
	if err != nil {
		handleError(w, "dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
