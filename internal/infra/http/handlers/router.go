package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/cirkidz-admin/internal/infra/http/middleware"
)

type Router struct {
	AllowedOrigins []string
	// TrustProxy honours X-Forwarded-For and X-Real-IP for client addresses.
	TrustProxy bool

	Leads       *LeadHandler
	Bookings    *BookingHandler
	FollowUps   *FollowUpHandler
	Enrolments  *EnrolmentHandler
	Internships *InternshipHandler
	Classes     *ClassHandler
	Dashboard   *DashboardHandler
	Toasts      *ToastHandler
	Admin       *AdminHandler
	Health      *HealthHandler
}

func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if rt.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", rt.Health.Handle)
		r.Get("/dashboard", rt.Dashboard.Handle)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", rt.Leads.List)
			r.Post("/", rt.Leads.CreateLead)
			r.Patch("/{id}", rt.Leads.UpdateLead)
			r.Post("/{id}/convert", rt.Leads.MarkConverted)
			r.Post("/{id}/schedule-trial", rt.Leads.ScheduleTrial)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", rt.Bookings.List)
			r.Post("/{id}/reschedule", rt.Bookings.RescheduleBooking)
			r.Post("/{id}/status", rt.Bookings.ChangeStatus)
		})

		r.Route("/follow-ups", func(r chi.Router) {
			r.Get("/", rt.FollowUps.List)
			r.Post("/{id}/log-call", rt.FollowUps.LogFollowUpCall)
			r.Post("/{id}/convert", rt.FollowUps.ConvertToEnrolment)
			r.Post("/{id}/lost", rt.FollowUps.MarkLost)
		})

		r.Route("/enrolments", func(r chi.Router) {
			r.Get("/", rt.Enrolments.List)
			r.Post("/", rt.Enrolments.CreateEnrolment)
			r.Patch("/{id}", rt.Enrolments.UpdateEnrolment)
			r.Post("/{id}/toggle-status", rt.Enrolments.ToggleStatus)
		})

		r.Route("/internships", func(r chi.Router) {
			r.Get("/", rt.Internships.List)
			r.Post("/{id}/hours", rt.Internships.LogHours)
			r.Post("/{id}/mentor", rt.Internships.AssignMentor)
		})

		r.Route("/classes", func(r chi.Router) {
			r.Get("/", rt.Classes.List)
			r.Put("/{id}", rt.Classes.EditClass)
			r.Post("/{id}/assign", rt.Classes.AssignStudents)
		})

		r.Get("/toasts", rt.Toasts.List)
		r.Delete("/toasts/{id}", rt.Toasts.Dismiss)

		r.Post("/admin/reset", rt.Admin.Reset)
	})

	return r
}
