package model

import "github.com/google/uuid"

// TokenClaims is the identity embedded in a bearer token. Ephemeral:
// reconstructed by verification on every request, never persisted.
type TokenClaims struct {
	Username string
	UserID   uuid.UUID
}

// TokenManager issues and validates bearer tokens.
type TokenManager interface {
	Generate(username string, userID uuid.UUID) (string, error)
	Parse(token string) (TokenClaims, error)
}
