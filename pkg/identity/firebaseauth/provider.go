// Package firebaseauth implements account.IdentityProvider on top of the
// Firebase Auth Admin SDK.
package firebaseauth

import (
	"context"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"

	"github.com/dalili-app/backend/pkg/account"
)

type Provider struct {
	client *auth.Client
}

func New(ctx context.Context, app *firebase.App) (*Provider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &Provider{client: client}, nil
}

func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", mapError(err)
	}
	return record.UID, nil
}

func (p *Provider) LookupByEmail(ctx context.Context, email string) (string, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", mapError(err)
	}
	return record.UID, nil
}

func (p *Provider) IssueToken(ctx context.Context, id string) (string, error) {
	return p.client.CustomToken(ctx, id)
}

// mapError converts SDK failures into account sentinels. The admin SDK
// reports its client-side argument validation as plain errors with no typed
// code, so malformed-email and weak-password are matched on message.
func mapError(err error) error {
	msg := err.Error()
	switch {
	case auth.IsEmailAlreadyExists(err):
		return account.ErrEmailTaken
	case auth.IsUserNotFound(err):
		return account.ErrAccountNotFound
	case errorutils.IsResourceExhausted(err):
		return account.ErrRateLimited
	case strings.Contains(msg, "malformed email"):
		return account.ErrInvalidEmail
	case strings.Contains(msg, "password must be"):
		return account.ErrWeakPassword
	}
	return err
}
