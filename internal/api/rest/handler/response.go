package handler

import (
	"github.com/google/uuid"

	"github.com/avolkov/notes-server/internal/model"
)

// noteOwner is the populated form of a note's owner reference. The
// password hash is structurally impossible to leak here.
type noteOwner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

// noteResponse serializes a note. User is the owner's id by default and
// the populated noteOwner when the reference has been resolved.
type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	User      any       `json:"user,omitempty"`
}

func toNoteResponse(note model.Note) noteResponse {
	resp := noteResponse{
		ID:        note.ID,
		Content:   note.Content,
		Important: note.Important,
	}
	switch {
	case note.Owner != nil:
		resp.User = noteOwner{
			ID:       note.Owner.ID,
			Username: note.Owner.Username,
			Name:     note.Owner.Name,
		}
	case note.UserID != uuid.Nil:
		resp.User = note.UserID
	}
	return resp
}

func toNoteResponses(notes []model.Note) []noteResponse {
	resp := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, toNoteResponse(note))
	}
	return resp
}

// userNote is the populated form of a user's note reference.
type userNote struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
}

// userResponse serializes a user without its password hash.
type userResponse struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Name     string     `json:"name"`
	Notes    []userNote `json:"notes"`
}

func toUserResponse(user model.User) userResponse {
	resp := userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Notes:    make([]userNote, 0, len(user.Notes)),
	}
	for _, note := range user.Notes {
		resp.Notes = append(resp.Notes, userNote{
			ID:        note.ID,
			Content:   note.Content,
			Important: note.Important,
		})
	}
	return resp
}
