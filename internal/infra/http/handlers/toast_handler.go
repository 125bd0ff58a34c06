package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/infra/notify"
)

type ToastHandler struct {
	Queue *notify.ToastQueue
}

func NewToastHandler(queue *notify.ToastQueue) *ToastHandler {
	return &ToastHandler{Queue: queue}
}

func (h *ToastHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Queue.List())
}

func (h *ToastHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.Queue.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
