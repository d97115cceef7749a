package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// Note implements note operations. Only Create passes the authorization
// gate; Get, Update and Delete are open to any caller by id.
type Note struct {
	noteStore model.NoteStore
	userStore model.UserStore
	logger    *logger.Logger
}

// NewNote creates a new Note service.
func NewNote(
	noteStore model.NoteStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Note {
	return &Note{
		noteStore: noteStore,
		userStore: userStore,
		logger:    logger,
	}
}

// List returns all notes with their owners resolved.
func (s *Note) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteStore.List(ctx)
	if err != nil {
		s.logger.Error("Note service: failed to list notes",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// Get returns a note by id with its owner resolved.
func (s *Note) Get(ctx context.Context, id uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, err
	}
	if err != nil {
		s.logger.Error("Note service: failed to get note",
			"note_id", id,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

// Create persists a note for the identity asserted by the verified token
// claims. The note insert and the owner-list append are two independent
// writes; a crash between them leaves the owner's denormalized list
// behind the notes table, which listings do not depend on.
func (s *Note) Create(ctx context.Context, claims model.TokenClaims, content string, important bool) (model.Note, error) {
	s.logger.Debug("Note service: starting note creation",
		"username", claims.Username)

	if claims.UserID == uuid.Nil {
		return model.Note{}, model.ErrTokenInvalid
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Note service: token names a nonexistent user",
			"user_id", claims.UserID)
		return model.Note{}, model.ErrTokenInvalid
	}
	if err != nil {
		s.logger.Error("Note service: failed to get user by id",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if utf8.RuneCountInString(content) < model.MinContentLength {
		return model.Note{}, model.NewValidationError(
			"content is shorter than the minimum allowed length (%d)", model.MinContentLength)
	}

	note, err := s.noteStore.Create(ctx, model.Note{
		ID:        uuid.New(),
		Content:   content,
		Important: important,
		UserID:    user.ID,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"user_id", user.ID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	if err := s.userStore.AppendNoteID(ctx, user.ID, note.ID); err != nil {
		s.logger.Error("Note service: failed to link note to user",
			"user_id", user.ID,
			"note_id", note.ID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to link note to user: %w", err)
	}

	s.logger.Info("Note service: note created",
		"user_id", user.ID,
		"note_id", note.ID)

	return note, nil
}

// Update changes a note's content and importance by id. No ownership
// check is performed.
func (s *Note) Update(ctx context.Context, id uuid.UUID, content string, important bool) (model.Note, error) {
	note, err := s.noteStore.Update(ctx, model.Note{
		ID:        id,
		Content:   content,
		Important: important,
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, err
	}
	if err != nil {
		s.logger.Error("Note service: failed to update note",
			"note_id", id,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// Delete removes a note by id. Deleting a nonexistent note succeeds.
// No ownership check is performed.
func (s *Note) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.noteStore.Delete(ctx, id); err != nil {
		s.logger.Error("Note service: failed to delete note",
			"note_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
