package account

import (
	"context"
	"errors"
)

// Errors reported by identity providers. Handlers switch on these to pick
// the client-visible status and message.
var (
	ErrEmailTaken      = errors.New("email already in use")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrWeakPassword    = errors.New("password too weak")
	ErrAccountNotFound = errors.New("account not found")
	ErrRateLimited     = errors.New("too many requests")
)

// IdentityProvider abstracts the managed authentication service.
// Implementations may be Firebase Auth or a local database-backed provider.
type IdentityProvider interface {
	// CreateAccount provisions a new account and returns its generated id.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	// LookupByEmail resolves an email to an account id. It does NOT verify
	// any password; see the use case for the implications.
	LookupByEmail(ctx context.Context, email string) (string, error)
	// IssueToken mints an opaque bearer token for the given account id.
	IssueToken(ctx context.Context, id string) (string, error)
}
