package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avolkov/notes-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

const notePopulatedQuery = `SELECT n.id, n.content, n.important, n.user_id, n.created_at, n.updated_at,
			  u.username, u.name
			  FROM notes n LEFT JOIN users u ON u.id = n.user_id`

func scanPopulatedNote(row pgx.Row) (model.Note, error) {
	var note model.Note
	var ownerID *uuid.UUID
	var ownerUsername, ownerName *string

	err := row.Scan(
		&note.ID, &note.Content, &note.Important, &ownerID,
		&note.CreatedAt, &note.UpdatedAt,
		&ownerUsername, &ownerName,
	)
	if err != nil {
		return model.Note{}, err
	}

	if ownerID != nil {
		note.UserID = *ownerID
		if ownerUsername != nil {
			note.Owner = &model.User{
				ID:       *ownerID,
				Username: *ownerUsername,
			}
			if ownerName != nil {
				note.Owner.Name = *ownerName
			}
		}
	}

	return note, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	note, err := scanPopulatedNote(r.db.QueryRow(ctx, notePopulatedQuery+` WHERE n.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) List(ctx context.Context) ([]model.Note, error) {
	rows, err := r.db.Query(ctx, notePopulatedQuery+` ORDER BY n.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanPopulatedNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	query := `SELECT id, content, important, user_id, created_at, updated_at
			  FROM notes WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes by user id: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(
			&note.ID, &note.Content, &note.Important, &note.UserID,
			&note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (id, content, important, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, content, important, created_at, updated_at`

	var ownerID *uuid.UUID
	if note.UserID != uuid.Nil {
		ownerID = &note.UserID
	}

	var savedNote model.Note
	savedNote.UserID = note.UserID
	err := r.db.QueryRow(ctx, query,
		note.ID, note.Content, note.Important, ownerID,
	).Scan(
		&savedNote.ID, &savedNote.Content, &savedNote.Important,
		&savedNote.CreatedAt, &savedNote.UpdatedAt,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return savedNote, nil
}

func (r *NoteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	query := `UPDATE notes SET content = $2, important = $3, updated_at = now()
			  WHERE id = $1
			  RETURNING id, content, important, user_id, created_at, updated_at`

	var updatedNote model.Note
	var ownerID *uuid.UUID
	err := r.db.QueryRow(ctx, query, note.ID, note.Content, note.Important).Scan(
		&updatedNote.ID, &updatedNote.Content, &updatedNote.Important, &ownerID,
		&updatedNote.CreatedAt, &updatedNote.UpdatedAt,
	)
	if ownerID != nil {
		updatedNote.UserID = *ownerID
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return updatedNote, nil
}

// Delete removes a note by id. Deleting an id that does not exist is not
// an error.
func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
