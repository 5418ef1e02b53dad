package handlers

import (
	"net/http"

	"messagelog/internal/application"
	"messagelog/internal/domain"
	"messagelog/internal/transport"
)

type StatsHandler struct {
	svc *application.Service
}

func NewStatsHandler(svc *application.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

type statsResponse struct {
	RedisCount     int64             `json:"redis_count"`
	PostgresCount  int64             `json:"postgres_count"`
	RecentMessages []*domain.Message `json:"recent_messages"`
}

// GetStats GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		transport.Error(w, err)
		return
	}

	recent := stats.Recent
	if recent == nil {
		recent = []*domain.Message{}
	}

	transport.WriteJSON(w, http.StatusOK, statsResponse{
		RedisCount:     stats.CacheCount,
		PostgresCount:  stats.StoreCount,
		RecentMessages: recent,
	})
}
