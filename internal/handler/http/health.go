package http

import (
	"context"
	"net/http"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/utils"
)

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// health reports liveness plus storage reachability. It answers 200 when the
// database responds to a ping and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			log.Err(err).Msg("storage ping failed")
			utils.WriteJSONError(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
