package checkers

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type FirestoreChecker struct {
	client *firestore.Client
}

func NewFirestoreChecker(client *firestore.Client) *FirestoreChecker {
	return &FirestoreChecker{client: client}
}

func (c *FirestoreChecker) Name() string { return "firestore" }

// Check lists at most one collection to confirm the client can reach the
// backend with its credentials.
func (c *FirestoreChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	_, err := c.client.Collections(ctx).Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}
