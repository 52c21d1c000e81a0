package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dalili-app/backend/pkg/account"
	"github.com/dalili-app/backend/pkg/medical"
)

// Compile-time checks that the mocks satisfy the use case interfaces.
var (
	_ account.UseCase = (*mockAccountUseCase)(nil)
	_ medical.UseCase = (*mockMedicalUseCase)(nil)
)

type mockAccountUseCase struct {
	RegisterFunc   func(ctx context.Context, in account.RegisterInput) (account.Profile, error)
	LoginFunc      func(ctx context.Context, email, password string) (account.LoginResult, error)
	GetProfileFunc func(ctx context.Context, id string) (account.Profile, error)
}

func (m *mockAccountUseCase) Register(ctx context.Context, in account.RegisterInput) (account.Profile, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return account.Profile{}, errors.New("RegisterFunc not implemented in mock")
}

func (m *mockAccountUseCase) Login(ctx context.Context, email, password string) (account.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return account.LoginResult{}, errors.New("LoginFunc not implemented in mock")
}

func (m *mockAccountUseCase) GetProfile(ctx context.Context, id string) (account.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, id)
	}
	return account.Profile{}, errors.New("GetProfileFunc not implemented in mock")
}

type mockMedicalUseCase struct {
	SubmitFunc  func(ctx context.Context, form medical.Form) (string, error)
	HistoryFunc func(ctx context.Context, userID string) ([]medical.Form, error)
}

func (m *mockMedicalUseCase) Submit(ctx context.Context, form medical.Form) (string, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, form)
	}
	return "", errors.New("SubmitFunc not implemented in mock")
}

func (m *mockMedicalUseCase) History(ctx context.Context, userID string) ([]medical.Form, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID)
	}
	return nil, errors.New("HistoryFunc not implemented in mock")
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var envelope map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		assert.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp, envelope
}
