package rest

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/avolkov/notes-server/internal/api/rest/handler"
	"github.com/avolkov/notes-server/internal/api/rest/middleware"
	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// Router builds the HTTP routing table for the notes API.
type Router struct {
	authService  handler.AuthService
	userService  handler.UserService
	noteService  handler.NoteService
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	noteService handler.NoteService,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		userService:  userService,
		noteService:  noteService,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Handler registers all routes and middleware and returns the root
// handler. Token authentication guards note creation only; note reads,
// updates and deletes are open by id.
func (r *Router) Handler() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	usersHandler := handler.NewUsers(r.authService, r.userService, r.logger)
	notesHandler := handler.NewNotes(r.noteService, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.logger)

	mux := httprouter.New()
	mux.POST("/api/users", usersHandler.Create)
	mux.GET("/api/users", usersHandler.List)
	mux.POST("/api/login", authHandler.Login)
	mux.GET("/api/notes", notesHandler.List)
	mux.GET("/api/notes/:id", notesHandler.Get)
	mux.POST("/api/notes", authenticate.Wrap(notesHandler.Create))
	mux.PUT("/api/notes/:id", notesHandler.Update)
	mux.DELETE("/api/notes/:id", notesHandler.Delete)

	// a wrong method on a known path is an unknown endpoint, not a 405
	mux.HandleMethodNotAllowed = false
	mux.NotFound = http.HandlerFunc(unknownEndpoint)
	mux.PanicHandler = r.handlePanic

	return middleware.NewLogging(r.logger).Handler(mux)
}

func unknownEndpoint(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "unknown endpoint"})
}

func (r *Router) handlePanic(w http.ResponseWriter, req *http.Request, v any) {
	r.logger.Error("HTTP handler panicked",
		"path", req.URL.Path,
		"panic", v)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
