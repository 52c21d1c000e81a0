package account

import (
	"context"
	"errors"
	"strings"
)

// ErrMissingFields signals that a required request field is empty.
var ErrMissingFields = errors.New("missing required fields")

// UseCase describes registration, login and profile retrieval.
type UseCase interface {
	Register(ctx context.Context, in RegisterInput) (Profile, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	GetProfile(ctx context.Context, id string) (Profile, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	BirthDate string
}

type LoginResult struct {
	Profile Profile
	Token   string
}

type service struct {
	provider IdentityProvider
	profiles ProfileRepository
}

// NewService returns the default implementation of UseCase.
func NewService(provider IdentityProvider, profiles ProfileRepository) UseCase {
	return &service{provider: provider, profiles: profiles}
}

// Register creates the account first, then writes the companion profile
// document keyed by the provider-issued id. If the document write fails the
// error is reported even though the account already exists: there is no
// compensating delete, so a window with an account and no profile is possible.
func (s *service) Register(ctx context.Context, in RegisterInput) (Profile, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" ||
		strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.BirthDate) == "" {
		return Profile{}, ErrMissingFields
	}

	id, err := s.provider.CreateAccount(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		BirthDate: in.BirthDate,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Login resolves the email to an account, loads its profile document and
// issues a token. The supplied password is NOT verified: the server-side
// lookup has no access to the provider's credential check, so the call
// succeeds for any password once the email exists. Kept for parity with the
// deployed behavior; a real credential check belongs in the provider's
// client-facing token exchange.
func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{}, ErrMissingFields
	}

	id, err := s.provider.LookupByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return LoginResult{}, err
	}
	token, err := s.provider.IssueToken(ctx, id)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Profile: profile, Token: token}, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (Profile, error) {
	return s.profiles.GetByID(ctx, id)
}
