package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/model"
)

const readinessTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessHandler reports ready only while the preference store answers.
type ReadinessHandler struct {
	store Pinger
}

func NewReadinessHandler(store Pinger) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

func (h *ReadinessHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.Errorf(model.LogSourceStorage, "readiness check failed: %v", err)
		commons.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "store": "down"})
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": "up"})
}
