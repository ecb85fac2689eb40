package http

import (
	"net/http"

	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/pkg/httpx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP serves the dashboard counters.
//
//	@Summary		Archive statistics
//	@Description	Returns the dashboard counters: incoming, outgoing, pending and processed letter counts.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	service.StatsSnapshot
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.StatsService.Snapshot(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to collect stats", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, snapshot)
}
