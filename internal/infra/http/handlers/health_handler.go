package handlers

import (
	"net/http"
	"time"
)

// BrokerStatus is satisfied by *queue.RabbitMQ.
type BrokerStatus interface {
	Healthy() bool
}

type Counter interface {
	Counts() map[string]int
}

type HealthHandler struct {
	Store     Counter
	Broker    BrokerStatus
	Mail      bool
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Records      map[string]int    `json:"records"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler accepts a nil broker when events are only logged.
func NewHealthHandler(store Counter, broker BrokerStatus, mailEnabled bool) *HealthHandler {
	return &HealthHandler{
		Store:     store,
		Broker:    broker,
		Mail:      mailEnabled,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, _ *http.Request) {
	deps := map[string]string{"store": "healthy"}

	if h.Broker != nil {
		if h.Broker.Healthy() {
			deps["rabbitmq"] = "healthy"
		} else {
			deps["rabbitmq"] = "unhealthy: connection closed"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.Mail {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Records:      h.Store.Counts(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
