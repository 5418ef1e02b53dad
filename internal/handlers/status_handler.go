package handlers

import (
	"net/http"
	"time"

	"messagelog/internal/application"
	"messagelog/internal/domain"
	"messagelog/internal/transport"
)

type StatusHandler struct {
	svc *application.Service
	app string
}

func NewStatusHandler(svc *application.Service, appName string) *StatusHandler {
	return &StatusHandler{svc: svc, app: appName}
}

// Root GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"app":       h.app,
		"status":    "running",
		"timestamp": time.Now().UTC().Format(domain.TimeLayout),
	})
}

// Health GET /health
//
// Never fails: backend outages are reported as status strings.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.svc.CheckHealth(r.Context())

	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    health.Overall,
		"redis":     health.Cache,
		"postgres":  health.Store,
		"timestamp": time.Now().UTC().Format(domain.TimeLayout),
	})
}
