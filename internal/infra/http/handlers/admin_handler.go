package handlers

import (
	"log"
	"net/http"

	"github.com/xavierca1/cirkidz-admin/internal/infra/notify"
)

// Resetter restores the seeded demo data.
type Resetter interface {
	Reset()
	Counts() map[string]int
}

type AdminHandler struct {
	Store    Resetter
	Notifier notify.Notifier
}

func NewAdminHandler(store Resetter, notifier notify.Notifier) *AdminHandler {
	return &AdminHandler{Store: store, Notifier: notifier}
}

func (h *AdminHandler) Reset(w http.ResponseWriter, _ *http.Request) {
	h.Store.Reset()
	log.Println("🔄 [ADMIN] demo data reset to seed")
	if h.Notifier != nil {
		h.Notifier.Notify(notify.KindSuccess, "Demo data reset.")
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": h.Store.Counts()})
}
