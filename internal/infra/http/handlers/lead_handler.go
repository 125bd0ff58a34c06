package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type LeadHandler struct {
	Reader      Reader
	Create      *usecase.CreateLeadUseCase
	Update      *usecase.UpdateLeadUseCase
	Convert     *usecase.MarkLeadConvertedUseCase
	Schedule    *usecase.ScheduleTrialUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(reader Reader, ucs *usecase.UseCases, limiter *RateLimiter) *LeadHandler {
	return &LeadHandler{
		Reader:      reader,
		Create:      ucs.CreateLead,
		Update:      ucs.UpdateLead,
		Convert:     ucs.MarkLeadConverted,
		Schedule:    ucs.ScheduleTrial,
		rateLimiter: limiter,
	}
}

// List handles GET /leads?status=
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads := filterBy(h.Reader.Leads(), r.URL.Query().Get("status"), func(l entity.Lead) string {
		return string(l.Status)
	})
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	if h.rateLimiter != nil && !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.Create.Execute(r.Context(), input)
	respond(w, "create_lead", http.StatusCreated, lead, err)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	lead, err := h.Update.Execute(r.Context(), input)
	respond(w, "update_lead", http.StatusOK, lead, err)
}

func (h *LeadHandler) MarkConverted(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Convert.Execute(r.Context(), chi.URLParam(r, "id"))
	respond(w, "mark_lead_converted", http.StatusOK, lead, err)
}

func (h *LeadHandler) ScheduleTrial(w http.ResponseWriter, r *http.Request) {
	var input usecase.ScheduleTrialInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	booking, err := h.Schedule.Execute(r.Context(), input)
	respond(w, "schedule_trial", http.StatusCreated, booking, err)
}

// getClientIP keys on the peer address. Behind a trusted proxy the router
// installs chi's RealIP, which has already rewritten RemoteAddr.
func getClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimiter is a fixed-window counter per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := rl.now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

// Cleanup drops idle visitors every interval until done is closed.
func (rl *RateLimiter) Cleanup(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastReset) > rl.window*2 {
			delete(rl.visitors, ip)
		}
	}
}
