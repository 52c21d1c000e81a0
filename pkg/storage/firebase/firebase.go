package firebase

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase Admin app from a service-account JSON blob.
// Callers treat any error as fatal: credentials are a startup-time concern,
// never a per-request one.
func NewApp(ctx context.Context, credentialsJSON []byte) (*firebase.App, error) {
	if !json.Valid(credentialsJSON) {
		return nil, fmt.Errorf("firebase credentials are not valid JSON")
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	return app, nil
}
