package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dalili-app/backend/api/http/presenter"
	"github.com/dalili-app/backend/pkg/account"
)

type ProfileHandler struct {
	useCase account.UseCase
}

func NewProfileHandler(useCase account.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get returns the profile document for a user id.
// @Summary Get user profile
// @Tags    user
// @Produce json
// @Param   uid path string true "user id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/profile/{uid} [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.useCase.GetProfile(c.Context(), c.Params("uid"))
	if err != nil {
		if errors.Is(err, account.ErrProfileNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Utilisateur non trouvé")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Erreur lors de la récupération du profil")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":        profile.ID,
			"name":      profile.Name,
			"email":     profile.Email,
			"birthDate": profile.BirthDate,
		},
	})
}
