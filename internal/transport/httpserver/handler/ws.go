package handler

import (
	"net/http"

	"credo-app-go/internal/notify"
)

// WebSocket attaches the connection to the broadcast hub; the client then
// receives every new recognition as it is created.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	notify.ServeWS(h.hub, h.log, w, r)
}
