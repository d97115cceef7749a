package service

import (
	"context"
	"fmt"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// User implements read operations over users.
type User struct {
	userStore model.UserStore
	noteStore model.NoteStore
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(
	userStore model.UserStore,
	noteStore model.NoteStore,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		noteStore: noteStore,
		logger:    logger,
	}
}

// List returns all users with their notes resolved. Ownership is derived
// from the note's owner reference, not the denormalized id list, so the
// two can never disagree here.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	for i := range users {
		notes, err := s.noteStore.ListByUserID(ctx, users[i].ID)
		if err != nil {
			s.logger.Error("User service: failed to list notes for user",
				"user_id", users[i].ID,
				"error", err.Error())
			return nil, fmt.Errorf("failed to list notes for user: %w", err)
		}
		users[i].Notes = notes
	}

	return users, nil
}
