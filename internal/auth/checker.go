package auth

import (
	"context"
	"errors"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

var ErrNotLoggedIn = errors.New("not logged in")

// Checker resolves a session token to the user that owns it.
type Checker interface {
	UserIDForToken(ctx context.Context, token string) (int, error)
}
