package account

import (
	"context"
	"errors"
)

// ErrProfileNotFound is returned when no profile document exists for an id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository abstracts the document store holding profile documents.
// Implementations may be Firestore, SQL, in-memory, etc. The creation
// timestamp is assigned by the store at write time, never by the caller.
type ProfileRepository interface {
	Create(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
}
