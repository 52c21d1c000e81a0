package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dalili-app/backend/api/http/presenter"
	"github.com/dalili-app/backend/pkg/medical"
)

type MedicalHandler struct {
	useCase medical.UseCase
}

func NewMedicalHandler(useCase medical.UseCase) *MedicalHandler {
	return &MedicalHandler{useCase: useCase}
}

type submitFormRequest struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	HasDisease    bool   `json:"hasDisease"`
	Disease       string `json:"disease"`
	Duration      string `json:"duration"`
	Temperature   string `json:"temperature"`
	ProblemNature string `json:"problemNature"`
	Symptoms      string `json:"symptoms"`
}

// Submit stores a medical triage form.
// @Summary Submit medical form
// @Tags    medical
// @Accept  json
// @Produce json
// @Param   input body submitFormRequest true "form payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /medical/form [post]
func (h *MedicalHandler) Submit(c *fiber.Ctx) error {
	var req submitFormRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Requête JSON invalide")
	}
	for _, required := range []string{
		req.UserID, req.Name, req.Country, req.Symptoms,
		req.Duration, req.Temperature, req.ProblemNature,
	} {
		if strings.TrimSpace(required) == "" {
			return presenter.Error(c, http.StatusBadRequest, "Tous les champs obligatoires doivent être remplis")
		}
	}

	// hasDisease and disease keep their zero values when omitted.
	formID, err := h.useCase.Submit(c.Context(), medical.Form{
		UserID:        req.UserID,
		Name:          req.Name,
		Country:       req.Country,
		HasDisease:    req.HasDisease,
		Disease:       req.Disease,
		Duration:      req.Duration,
		Temperature:   req.Temperature,
		ProblemNature: req.ProblemNature,
		Symptoms:      req.Symptoms,
	})
	if err != nil {
		if errors.Is(err, medical.ErrMissingFields) {
			return presenter.Error(c, http.StatusBadRequest, "Tous les champs obligatoires doivent être remplis")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement du formulaire médical")
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "Formulaire médical enregistré avec succès",
		"formId":  formID,
	})
}

// History lists a user's submitted forms, newest first.
// @Summary Medical form history
// @Tags    medical
// @Produce json
// @Param   userId path string true "user id"
// @Success 200 {object} map[string]any
// @Router  /medical/history/{userId} [get]
func (h *MedicalHandler) History(c *fiber.Ctx) error {
	forms, err := h.useCase.History(c.Context(), c.Params("userId"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Erreur lors de la récupération de l'historique médical")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"forms":   forms,
	})
}
