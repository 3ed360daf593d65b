package handler

import (
	"errors"
	"net/http"

	"credo-app-go/internal/domain/recognition"
)

func (h *Handlers) ListRecognitions(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recognitions.List(r.Context())
	if err != nil {
		h.log.Error("recognitions: list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load recognitions")
		return
	}

	if recs == nil {
		recs = []recognition.Recognition{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handlers) CreateRecognition(w http.ResponseWriter, r *http.Request) {
	var input recognition.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	rec, err := h.recognitions.Create(r.Context(), input)
	if err != nil {
		var validation *recognition.ValidationError
		if errors.As(err, &validation) {
			writeError(w, http.StatusBadRequest, "validation_error", validation.Error())
			return
		}
		h.log.Error("recognitions: create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create recognition")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}
