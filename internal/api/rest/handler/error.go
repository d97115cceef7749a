package handler

import (
	"errors"
	"net/http"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError translates domain errors to HTTP responses. Internal
// detail never reaches the response body; unexpected errors are logged
// and reported as a generic 500.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	var vErr *model.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message})
	case errors.Is(err, model.ErrUsernameTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: model.ErrUsernameTaken.Error()})
	case errors.Is(err, model.ErrMalformedID):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: model.ErrMalformedID.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: model.ErrInvalidCredentials.Error()})
	case errors.Is(err, model.ErrTokenInvalid):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: model.ErrTokenInvalid.Error()})
	case errors.Is(err, model.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		log.Error("handler: unhandled error",
			"error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
