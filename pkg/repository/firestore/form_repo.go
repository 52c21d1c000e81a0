package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dalili-app/backend/pkg/medical"
)

const formsCollection = "forms"

// FormRepository implements medical.FormRepository over the "forms"
// collection. Note: the userId + createdAt desc query needs a composite
// index, which Firestore prompts for on first use.
type FormRepository struct {
	client *firestore.Client
}

func NewFormRepository(client *firestore.Client) *FormRepository {
	return &FormRepository{client: client}
}

func (r *FormRepository) Add(ctx context.Context, form medical.Form) (string, error) {
	ref, _, err := r.client.Collection(formsCollection).Add(ctx, map[string]any{
		"userId":        form.UserID,
		"name":          form.Name,
		"country":       form.Country,
		"hasDisease":    form.HasDisease,
		"disease":       form.Disease,
		"duration":      form.Duration,
		"temperature":   form.Temperature,
		"problemNature": form.ProblemNature,
		"symptoms":      form.Symptoms,
		"createdAt":     firestore.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *FormRepository) ListByUser(ctx context.Context, userID string) ([]medical.Form, error) {
	iter := r.client.Collection(formsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	forms := make([]medical.Form, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		data := snap.Data()
		form := medical.Form{
			ID:            snap.Ref.ID,
			UserID:        asString(data["userId"]),
			Name:          asString(data["name"]),
			Country:       asString(data["country"]),
			Disease:       asString(data["disease"]),
			Duration:      asString(data["duration"]),
			Temperature:   asString(data["temperature"]),
			ProblemNature: asString(data["problemNature"]),
			Symptoms:      asString(data["symptoms"]),
		}
		if b, ok := data["hasDisease"].(bool); ok {
			form.HasDisease = b
		}
		// createdAt stays null when the server timestamp has not
		// materialized yet.
		if ts, ok := data["createdAt"].(time.Time); ok {
			ts = ts.UTC()
			form.CreatedAt = &ts
		}
		forms = append(forms, form)
	}
	return forms, nil
}
