package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// UserService defines read operations over users.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
}

// Users handles user endpoints.
type Users struct {
	authService AuthService
	userService UserService
	logger      *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(authService AuthService, userService UserService, logger *logger.Logger) *Users {
	return &Users{
		authService: authService,
		userService: userService,
		logger:      logger,
	}
}

type signUpRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Create handles signup.
func (h *Users) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, err := h.authService.SignUp(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// List returns all users with their notes populated.
func (h *Users) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	writeJSON(w, http.StatusOK, resp)
}
