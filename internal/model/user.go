package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	List(ctx context.Context) ([]User, error)
	AppendNoteID(ctx context.Context, userID, noteID uuid.UUID) error
}

// User represents a stored user with authentication material.
// PasswordHash must never leave the process through any response body.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	PasswordHash string
	// NoteIDs is a denormalized, ordered list of notes owned by the user.
	// The note's UserID reference is authoritative; this list is best effort.
	NoteIDs   []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	// Notes carries the user's notes when the references have been
	// resolved at read time. Nil otherwise.
	Notes []Note
}
