package middleware

import (
	"context"

	"github.com/avolkov/notes-server/internal/model"
)

type key byte

var claimsKey = key(1)

// WithClaims returns a context carrying verified token claims.
func WithClaims(ctx context.Context, claims model.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom extracts verified token claims from the context.
func ClaimsFrom(ctx context.Context) (model.TokenClaims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return model.TokenClaims{}, false
	}
	return v.(model.TokenClaims), true
}
