package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkov/notes-server/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.NewValidationError("invalid request body")
	}
	return nil
}

// parseID parses a path id, mapping failures to the malformed-id error.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.ErrMalformedID
	}
	return id, nil
}
