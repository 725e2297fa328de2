// Package requestctx carries caller identity through request contexts.
package requestctx

import (
	"context"
	"strings"
)

type userIDContextKey struct{}

type bearerTokenContextKey struct{}

// WithUserID stores a user identifier in context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userIDContextKey{}, strings.TrimSpace(userID))
}

// UserIDFromContext returns the user identifier stored in context.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(userIDContextKey{}).(string)
	return value
}

// WithBearerToken stores the backend access token of the calling session.
// Outbound API clients read it back instead of consulting shared state.
func WithBearerToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, bearerTokenContextKey{}, strings.TrimSpace(token))
}

// BearerTokenFromContext returns the backend access token stored in context.
func BearerTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(bearerTokenContextKey{}).(string)
	return value
}
