package application

import "context"

const (
	StatusConnected = "connected"
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
)

type Health struct {
	Cache   string
	Store   string
	Overall string
}

// CheckHealth pings both backends independently and describes failure
// as data rather than propagating it. It never returns an error.
func (s *Service) CheckHealth(ctx context.Context) Health {
	h := Health{Cache: StatusConnected, Store: StatusConnected}

	if err := s.cache.Ping(ctx); err != nil {
		h.Cache = "error: " + err.Error()
	}
	if err := s.store.Ping(ctx); err != nil {
		h.Store = "error: " + err.Error()
	}

	if h.Cache == StatusConnected && h.Store == StatusConnected {
		h.Overall = StatusHealthy
	} else {
		h.Overall = StatusDegraded
	}

	return h
}
