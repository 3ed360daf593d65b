package handler

import (
	"net/http"

	"credo-app-go/internal/domain/team"
)

func (h *Handlers) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context())
	if err != nil {
		h.log.Error("team: list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load team members")
		return
	}

	if members == nil {
		members = []team.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}
