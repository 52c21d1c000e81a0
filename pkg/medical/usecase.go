package medical

import (
	"context"
	"errors"
	"strings"
)

// ErrMissingFields signals that a required form field is empty.
var ErrMissingFields = errors.New("missing required fields")

// UseCase describes form submission and history retrieval.
type UseCase interface {
	Submit(ctx context.Context, form Form) (string, error)
	History(ctx context.Context, userID string) ([]Form, error)
}

type service struct {
	forms FormRepository
}

// NewService returns the default implementation of UseCase.
func NewService(forms FormRepository) UseCase {
	return &service{forms: forms}
}

// Submit validates required fields and appends the form. HasDisease and
// Disease are optional and keep their zero values (false, "") when absent.
func (s *service) Submit(ctx context.Context, form Form) (string, error) {
	for _, required := range []string{
		form.UserID, form.Name, form.Country, form.Symptoms,
		form.Duration, form.Temperature, form.ProblemNature,
	} {
		if strings.TrimSpace(required) == "" {
			return "", ErrMissingFields
		}
	}
	return s.forms.Add(ctx, form)
}

// History lists a user's forms newest first. A user with no forms gets an
// empty list, not an error.
func (s *service) History(ctx context.Context, userID string) ([]Form, error) {
	forms, err := s.forms.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if forms == nil {
		forms = make([]Form, 0)
	}
	return forms, nil
}
