package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type BookingHandler struct {
	Reader     Reader
	Reschedule *usecase.RescheduleBookingUseCase
	Status     *usecase.ChangeBookingStatusUseCase
}

func NewBookingHandler(reader Reader, ucs *usecase.UseCases) *BookingHandler {
	return &BookingHandler{
		Reader:     reader,
		Reschedule: ucs.RescheduleBooking,
		Status:     ucs.ChangeBookingStatus,
	}
}

// List handles GET /bookings?week=YYYY-MM-DD&status=
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bookings := filterBy(h.Reader.Bookings(), q.Get("week"), func(b entity.TrialBooking) string {
		return b.WeekOf
	})
	bookings = filterBy(bookings, q.Get("status"), func(b entity.TrialBooking) string {
		return string(b.Status)
	})
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	var input usecase.RescheduleBookingInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.BookingID = chi.URLParam(r, "id")

	booking, err := h.Reschedule.Execute(r.Context(), input)
	respond(w, "reschedule_booking", http.StatusOK, booking, err)
}

func (h *BookingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChangeBookingStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.BookingID = chi.URLParam(r, "id")

	booking, err := h.Status.Execute(r.Context(), input)
	respond(w, "change_booking_status", http.StatusOK, booking, err)
}
