// Package firestore implements the document repositories over Cloud
// Firestore, the document store of the managed deployment.
package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dalili-app/backend/pkg/account"
)

const usersCollection = "users"

// ProfileRepository implements account.ProfileRepository over the "users"
// collection, documents keyed by the identity provider's account id.
type ProfileRepository struct {
	client *firestore.Client
}

func NewProfileRepository(client *firestore.Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func (r *ProfileRepository) Create(ctx context.Context, profile account.Profile) error {
	_, err := r.client.Collection(usersCollection).Doc(profile.ID).Set(ctx, map[string]any{
		"name":      profile.Name,
		"email":     profile.Email,
		"birthDate": profile.BirthDate,
		"createdAt": firestore.ServerTimestamp,
	})
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (account.Profile, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return account.Profile{}, account.ErrProfileNotFound
		}
		return account.Profile{}, err
	}

	data := snap.Data()
	profile := account.Profile{
		ID:        id,
		Name:      asString(data["name"]),
		Email:     asString(data["email"]),
		BirthDate: asString(data["birthDate"]),
	}
	if ts, ok := data["createdAt"].(time.Time); ok {
		ts = ts.UTC()
		profile.CreatedAt = &ts
	}
	return profile, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
