package handler

import "net/http"

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Compute(r.Context())
	if err != nil {
		h.log.Error("stats: compute failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
