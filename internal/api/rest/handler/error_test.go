package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avolkov/notes-server/internal/model"
	"github.com/avolkov/notes-server/internal/testutil"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        model.NewValidationError("content is shorter than the minimum allowed length (5)"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"content is shorter than the minimum allowed length (5)"}`,
		},
		{
			name:       "username taken",
			err:        model.ErrUsernameTaken,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"username must be unique"}`,
		},
		{
			name:       "malformed id",
			err:        model.ErrMalformedID,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"malformed id"}`,
		},
		{
			name:       "invalid credentials",
			err:        model.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid username or password"}`,
		},
		{
			name:       "token invalid",
			err:        model.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token invalid"}`,
		},
		{
			name:       "wrapped token invalid",
			err:        errors.Join(model.ErrTokenInvalid, errors.New("signature mismatch")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token invalid"}`,
		},
		{
			name:       "not found",
			err:        model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "",
		},
		{
			name:       "unknown error hides detail",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleError(w, testutil.MakeNoopLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
