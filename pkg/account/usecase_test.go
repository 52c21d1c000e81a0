package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Compile-time checks that the mocks satisfy the collaborator interfaces.
var (
	_ IdentityProvider  = (*mockProvider)(nil)
	_ ProfileRepository = (*mockProfiles)(nil)
)

type mockProvider struct {
	CreateAccountFunc func(ctx context.Context, email, password, displayName string) (string, error)
	LookupByEmailFunc func(ctx context.Context, email string) (string, error)
	IssueTokenFunc    func(ctx context.Context, id string) (string, error)

	CreateAccountCalls int
}

func (m *mockProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	m.CreateAccountCalls++
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, email, password, displayName)
	}
	return "uid-1", nil
}

func (m *mockProvider) LookupByEmail(ctx context.Context, email string) (string, error) {
	if m.LookupByEmailFunc != nil {
		return m.LookupByEmailFunc(ctx, email)
	}
	return "", errors.New("LookupByEmailFunc not implemented in mock")
}

func (m *mockProvider) IssueToken(ctx context.Context, id string) (string, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, id)
	}
	return "token-1", nil
}

type mockProfiles struct {
	CreateFunc  func(ctx context.Context, profile Profile) error
	GetByIDFunc func(ctx context.Context, id string) (Profile, error)

	CreateCalls int
}

func (m *mockProfiles) Create(ctx context.Context, profile Profile) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfiles) GetByID(ctx context.Context, id string) (Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return Profile{}, ErrProfileNotFound
}

func TestRegisterMissingFields(t *testing.T) {
	complete := RegisterInput{Email: "a@x.com", Password: "secret123", Name: "A", BirthDate: "2000-01-01"}

	cases := map[string]func(in *RegisterInput){
		"email":     func(in *RegisterInput) { in.Email = "" },
		"password":  func(in *RegisterInput) { in.Password = "" },
		"name":      func(in *RegisterInput) { in.Name = "" },
		"birthDate": func(in *RegisterInput) { in.BirthDate = "" },
	}
	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			provider := &mockProvider{}
			profiles := &mockProfiles{}
			svc := NewService(provider, profiles)

			in := complete
			clear(&in)
			_, err := svc.Register(context.Background(), in)

			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Zero(t, provider.CreateAccountCalls, "no account should be created on validation failure")
			assert.Zero(t, profiles.CreateCalls, "no document should be written on validation failure")
		})
	}
}

func TestRegisterWritesProfileAfterAccount(t *testing.T) {
	var accountCreated bool
	provider := &mockProvider{
		CreateAccountFunc: func(ctx context.Context, email, password, displayName string) (string, error) {
			accountCreated = true
			assert.Equal(t, "a@x.com", email)
			assert.Equal(t, "A", displayName)
			return "uid-42", nil
		},
	}
	profiles := &mockProfiles{
		CreateFunc: func(ctx context.Context, profile Profile) error {
			assert.True(t, accountCreated, "account creation must precede the profile write")
			assert.Equal(t, "uid-42", profile.ID)
			assert.Equal(t, "2000-01-01", profile.BirthDate)
			return nil
		},
	}
	svc := NewService(provider, profiles)

	profile, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@x.com", Password: "secret123", Name: "A", BirthDate: "2000-01-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uid-42", profile.ID)
	assert.Equal(t, "A", profile.Name)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, 1, profiles.CreateCalls)
}

func TestRegisterProviderErrorsPassThrough(t *testing.T) {
	for _, sentinel := range []error{ErrEmailTaken, ErrInvalidEmail, ErrWeakPassword} {
		provider := &mockProvider{
			CreateAccountFunc: func(ctx context.Context, email, password, displayName string) (string, error) {
				return "", sentinel
			},
		}
		profiles := &mockProfiles{}
		svc := NewService(provider, profiles)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email: "a@x.com", Password: "secret123", Name: "A", BirthDate: "2000-01-01",
		})

		assert.ErrorIs(t, err, sentinel)
		assert.Zero(t, profiles.CreateCalls)
	}
}

func TestRegisterReportsFailedProfileWrite(t *testing.T) {
	// The account exists by the time the document write fails; the error is
	// still surfaced, leaving the inconsistency visible rather than masked.
	provider := &mockProvider{}
	boom := errors.New("store unavailable")
	profiles := &mockProfiles{
		CreateFunc: func(ctx context.Context, profile Profile) error { return boom },
	}
	svc := NewService(provider, profiles)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@x.com", Password: "secret123", Name: "A", BirthDate: "2000-01-01",
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, provider.CreateAccountCalls)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(&mockProvider{}, &mockProfiles{})

	_, err := svc.Login(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Login(context.Background(), "a@x.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginUnknownEmail(t *testing.T) {
	provider := &mockProvider{
		LookupByEmailFunc: func(ctx context.Context, email string) (string, error) {
			return "", ErrAccountNotFound
		},
	}
	svc := NewService(provider, &mockProfiles{})

	_, err := svc.Login(context.Background(), "nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLoginMissingProfileDocument(t *testing.T) {
	provider := &mockProvider{
		LookupByEmailFunc: func(ctx context.Context, email string) (string, error) {
			return "uid-1", nil
		},
	}
	profiles := &mockProfiles{
		GetByIDFunc: func(ctx context.Context, id string) (Profile, error) {
			return Profile{}, ErrProfileNotFound
		},
	}
	svc := NewService(provider, profiles)

	_, err := svc.Login(context.Background(), "a@x.com", "secret123")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestLoginIssuesTokenForLookedUpAccount(t *testing.T) {
	provider := &mockProvider{
		LookupByEmailFunc: func(ctx context.Context, email string) (string, error) {
			return "uid-7", nil
		},
		IssueTokenFunc: func(ctx context.Context, id string) (string, error) {
			assert.Equal(t, "uid-7", id)
			return "opaque-token", nil
		},
	}
	profiles := &mockProfiles{
		GetByIDFunc: func(ctx context.Context, id string) (Profile, error) {
			return Profile{ID: id, Name: "A", Email: "a@x.com"}, nil
		},
	}
	svc := NewService(provider, profiles)

	result, err := svc.Login(context.Background(), "a@x.com", "any password at all")

	assert.NoError(t, err)
	assert.Equal(t, "opaque-token", result.Token)
	assert.Equal(t, "uid-7", result.Profile.ID)
}

func TestGetProfile(t *testing.T) {
	profiles := &mockProfiles{
		GetByIDFunc: func(ctx context.Context, id string) (Profile, error) {
			if id == "uid-1" {
				return Profile{ID: id, Name: "A", Email: "a@x.com", BirthDate: "2000-01-01"}, nil
			}
			return Profile{}, ErrProfileNotFound
		},
	}
	svc := NewService(&mockProvider{}, profiles)

	profile, err := svc.GetProfile(context.Background(), "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, "A", profile.Name)

	_, err = svc.GetProfile(context.Background(), "uid-unknown")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRegisterThenGetProfileRoundTrip(t *testing.T) {
	stored := map[string]Profile{}
	provider := &mockProvider{}
	profiles := &mockProfiles{
		CreateFunc: func(ctx context.Context, profile Profile) error {
			stored[profile.ID] = profile
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (Profile, error) {
			p, ok := stored[id]
			if !ok {
				return Profile{}, ErrProfileNotFound
			}
			return p, nil
		},
	}
	svc := NewService(provider, profiles)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@x.com", Password: "secret123", Name: "A", BirthDate: "2000-01-01",
	})
	assert.NoError(t, err)

	fetched, err := svc.GetProfile(context.Background(), registered.ID)
	assert.NoError(t, err)
	assert.Equal(t, registered.Name, fetched.Name)
	assert.Equal(t, registered.Email, fetched.Email)
}
