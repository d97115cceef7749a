package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/avolkov/notes-server/internal/api/rest/middleware"
	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// NoteService defines note operations.
type NoteService interface {
	List(ctx context.Context) ([]model.Note, error)
	Get(ctx context.Context, id uuid.UUID) (model.Note, error)
	Create(ctx context.Context, claims model.TokenClaims, content string, important bool) (model.Note, error)
	Update(ctx context.Context, id uuid.UUID, content string, important bool) (model.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notes handles note endpoints.
type Notes struct {
	noteService NoteService
	logger      *logger.Logger
}

// NewNotes creates a new Notes handler.
func NewNotes(noteService NoteService, logger *logger.Logger) *Notes {
	return &Notes{
		noteService: noteService,
		logger:      logger,
	}
}

type noteRequest struct {
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

// List returns all notes with their owners populated.
func (h *Notes) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// Get returns a single note by id.
func (h *Notes) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	note, err := h.noteService.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Create persists a note for the authenticated user. The authenticate
// middleware has already verified the token; the claims it extracted
// arrive through the request context.
func (h *Notes) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrTokenInvalid)
		return
	}

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	note, err := h.noteService.Create(r.Context(), claims, req.Content, req.Important)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Update changes a note's content and importance.
func (h *Notes) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	note, err := h.noteService.Update(r.Context(), id, req.Content, req.Important)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete removes a note by id, succeeding even when it never existed.
func (h *Notes) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
