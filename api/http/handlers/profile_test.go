package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dalili-app/backend/pkg/account"
)

func newProfileApp(uc account.UseCase) *fiber.App {
	app := fiber.New()
	h := NewProfileHandler(uc)
	app.Get("/api/user/profile/:uid", h.Get)
	return app
}

func TestGetProfileFound(t *testing.T) {
	uc := &mockAccountUseCase{
		GetProfileFunc: func(ctx context.Context, id string) (account.Profile, error) {
			assert.Equal(t, "uid-1", id)
			return account.Profile{ID: id, Name: "A", Email: "a@x.com", BirthDate: "2000-01-01"}, nil
		},
	}
	app := newProfileApp(uc)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/user/profile/uid-1", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])
	user := envelope["user"].(map[string]any)
	assert.Equal(t, "A", user["name"])
	assert.Equal(t, "2000-01-01", user["birthDate"])
}

func TestGetProfileNotFound(t *testing.T) {
	uc := &mockAccountUseCase{
		GetProfileFunc: func(ctx context.Context, id string) (account.Profile, error) {
			return account.Profile{}, account.ErrProfileNotFound
		},
	}
	app := newProfileApp(uc)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/user/profile/uid-unknown", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Utilisateur non trouvé", envelope["message"])
}

func TestGetProfileUpstreamFailure(t *testing.T) {
	uc := &mockAccountUseCase{
		GetProfileFunc: func(ctx context.Context, id string) (account.Profile, error) {
			return account.Profile{}, errors.New("store unavailable")
		},
	}
	app := newProfileApp(uc)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/user/profile/uid-1", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Erreur lors de la récupération du profil", envelope["message"])
}
