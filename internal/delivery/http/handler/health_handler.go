package handler

import (
	"context"
	"net/http"
	"time"

	"self-fitness/pkg/response"
)

// Pinger is satisfied by the database and redis health checks.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health reports {status:"ok"} when every dependency answers, otherwise 503
// with the failing dependency names.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	failing := make(map[string]string)
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			failing[name] = err.Error()
		}
	}

	if len(failing) > 0 {
		response.JSON(w, http.StatusServiceUnavailable, response.Response{
			Status:  http.StatusServiceUnavailable,
			Message: response.MessageError,
			Data:    map[string]interface{}{"status": "down", "checks": failing},
		})
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"status": "ok"})
}
