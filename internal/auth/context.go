package auth

import (
	"context"
	"net/http"
)

type contextKey string

const userIDContextKey contextKey = "auth-user-id"

// ContextWithUserID is used by the auth middleware to attach the session's
// user to the request context after a successful token check.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(userIDContextKey).(int)
	if !ok || userID <= 0 {
		return 0, ErrNotLoggedIn
	}
	return userID, nil
}

func UserIDFromRequest(r *http.Request) (int, error) {
	return UserIDFromContext(r.Context())
}
