package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"messagelog/internal/handlers"
	"messagelog/internal/middleware"
	"messagelog/internal/observability"
)

func New(
	statusH *handlers.StatusHandler,
	msgH *handlers.MessageHandler,
	statsH *handlers.StatsHandler,
	serviceName string,
) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(observability.MetricsMiddleware(serviceName))
	r.Use(middleware.Recovery())

	r.Get("/", statusH.Root)
	r.Get("/health", statusH.Health)
	r.Get("/health/live", observability.HealthLiveHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/messages", msgH.CreateMessage)
	r.Get("/messages", msgH.ListMessages)
	r.Get("/stats", statsH.GetStats)

	return r
}
