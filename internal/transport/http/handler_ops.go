package httptransport

import (
	"context"
	"net/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type OpsHandlers struct {
	db Pinger
}

func NewOpsHandlers(db Pinger) *OpsHandlers {
	return &OpsHandlers{db: db}
}

type HealthResponse struct {
	OK bool   `json:"ok"`
	DB string `json:"db"`
}

func (h *OpsHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{OK: false, DB: "down"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{OK: true, DB: "up"})
	}
}
