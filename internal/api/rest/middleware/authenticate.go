package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// bearerPrefix is matched case-sensitively; any other scheme is treated
// as no credential presented.
const bearerPrefix = "Bearer "

// Authenticate validates bearer tokens and injects the verified claims
// into the request context.
type Authenticate struct {
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, logger: logger}
}

// Wrap guards a route. A missing header, a non-Bearer scheme, a forged
// signature and an expired token all produce the same 401 body; the
// caller learns nothing beyond "token invalid".
func (m *Authenticate) Wrap(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := m.tokenManager.Parse(extractToken(r))
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "token invalid"})
			return
		}

		next(w, r.WithContext(WithClaims(r.Context(), claims)), ps)
	}
}

func extractToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if strings.HasPrefix(authorization, bearerPrefix) {
		return strings.TrimPrefix(authorization, bearerPrefix)
	}
	return ""
}
