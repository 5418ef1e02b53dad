package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"messagelog/internal/application"
	"messagelog/internal/domain"
	"messagelog/internal/middleware"
	"messagelog/internal/transport"
)

// MessageHandler handles the message write and read routes.
type MessageHandler struct {
	svc *application.Service
}

func NewMessageHandler(svc *application.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

type listResponse struct {
	Messages []*domain.Message `json:"messages"`
	Total    int               `json:"total"`
}

// CreateMessage POST /messages
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_body", "invalid json")
		return
	}

	msg, outcome, err := h.svc.SubmitMessage(r.Context(), req.Content)
	if err != nil {
		transport.Error(w, err)
		return
	}

	if outcome.Degraded() {
		// The message is durably stored; only the advisory cache lags.
		zap.L().Warn("message stored with degraded cache mirror",
			zap.Int64("message_id", msg.ID),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(outcome.Reason),
		)
	}

	transport.WriteJSON(w, http.StatusOK, msg)
}

// ListMessages GET /messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit := application.DefaultListLimit
	if val := r.URL.Query().Get("limit"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := h.svc.ListMessages(r.Context(), limit)
	if err != nil {
		transport.Error(w, err)
		return
	}
	if messages == nil {
		messages = []*domain.Message{}
	}

	transport.WriteJSON(w, http.StatusOK, listResponse{
		Messages: messages,
		Total:    len(messages),
	})
}
