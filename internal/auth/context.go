package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const tokenKey ctxKey = iota

// WithToken stores the admin's bearer token on the context. The upstream
// client forwards it on every call it makes for that request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Token returns the bearer token for this request, or "" when the caller is
// unauthenticated. Cached queries treat an empty token as "disabled" rather
// than an error.
func Token(ctx context.Context) string {
	if val, ok := ctx.Value(tokenKey).(string); ok {
		return val
	}
	return ""
}

// FromRequest extracts the bearer token from the Authorization header.
func FromRequest(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
