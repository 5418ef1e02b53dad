package transport

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"messagelog/internal/domain"
)

// Error maps a domain error onto an HTTP status and JSON error body.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyContent):
		WriteError(w, http.StatusUnprocessableEntity, "empty_content", "content is required")
	case errors.Is(err, domain.ErrStoreUnavailable):
		zap.L().Warn("store_unavailable", zap.Error(err))
		WriteError(w, http.StatusServiceUnavailable, "store_unavailable", "durable store is unavailable")
	case errors.Is(err, domain.ErrCacheUnavailable):
		zap.L().Warn("cache_unavailable", zap.Error(err))
		WriteError(w, http.StatusServiceUnavailable, "cache_unavailable", "cache is unavailable")
	default:
		zap.L().Error("internal_error", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
	}
}
