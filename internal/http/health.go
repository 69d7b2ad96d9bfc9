package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

type healthRes struct {
	Status string `json:"status"`
}

// Healthz reports whether the store is reachable.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	if h.Store != nil {
		if err := h.Store.Ping(ctx); err != nil {
			h.Logger.Warn("[Healthz] store unreachable",
				"request_id", requestid.Get(ctx),
				"details", err.Error(),
			)
			_ = httputils.WriteJSONError(w, v, "store unreachable", http.StatusServiceUnavailable)
			return
		}
	}

	_ = httputils.WriteJSONData(w, v, healthRes{Status: "ok"}, http.StatusOK)
}
