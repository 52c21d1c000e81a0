package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dalili-app/backend/api/http/presenter"
	"github.com/dalili-app/backend/pkg/account"
)

type AuthHandler struct {
	useCase account.UseCase
}

func NewAuthHandler(useCase account.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Requête JSON invalide")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" ||
		strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.BirthDate) == "" {
		return presenter.Error(c, http.StatusBadRequest, "Tous les champs sont obligatoires")
	}

	profile, err := h.useCase.Register(c.Context(), account.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingFields):
			return presenter.Error(c, http.StatusBadRequest, "Tous les champs sont obligatoires")
		case errors.Is(err, account.ErrEmailTaken):
			// 400, not 409: kept as-is for client compatibility.
			return presenter.Error(c, http.StatusBadRequest, "Cet email est déjà utilisé")
		case errors.Is(err, account.ErrInvalidEmail):
			return presenter.Error(c, http.StatusBadRequest, "Format d'email invalide")
		case errors.Is(err, account.ErrWeakPassword):
			return presenter.Error(c, http.StatusBadRequest, "Le mot de passe est trop faible")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Erreur lors de l'inscription")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "Inscription réussie",
		"user": fiber.Map{
			"id":    profile.ID,
			"name":  profile.Name,
			"email": profile.Email,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Requête JSON invalide")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "Email et mot de passe requis")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingFields):
			return presenter.Error(c, http.StatusBadRequest, "Email et mot de passe requis")
		case errors.Is(err, account.ErrAccountNotFound):
			return presenter.Error(c, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		case errors.Is(err, account.ErrInvalidEmail):
			return presenter.Error(c, http.StatusBadRequest, "Format d'email invalide")
		case errors.Is(err, account.ErrRateLimited):
			return presenter.Error(c, http.StatusTooManyRequests, "Trop de tentatives de connexion. Veuillez réessayer plus tard")
		case errors.Is(err, account.ErrProfileNotFound):
			return presenter.Error(c, http.StatusNotFound, "Utilisateur non trouvé")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Erreur lors de la connexion")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"token":   result.Token,
		"user": fiber.Map{
			"id":    result.Profile.ID,
			"name":  result.Profile.Name,
			"email": result.Profile.Email,
		},
	})
}
