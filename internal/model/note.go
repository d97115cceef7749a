package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MinContentLength is the minimum allowed length of a note's content.
const MinContentLength = 5

// NoteStore defines persistence operations for notes.
type NoteStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Note, error)
	List(ctx context.Context) ([]Note, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]Note, error)
	Create(ctx context.Context, note Note) (Note, error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Note represents a stored note.
type Note struct {
	ID        uuid.UUID
	Content   string
	Important bool
	// UserID references the owning user. uuid.Nil means the note has no owner.
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner carries username and name when the reference has been resolved
	// at read time. Nil otherwise.
	Owner *User
}
