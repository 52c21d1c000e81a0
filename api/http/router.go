package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dalili-app/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, profile *handlers.ProfileHandler, medical *handlers.MedicalHandler, health *handlers.HealthHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bienvenue sur le serveur DALILI API")
	})

	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	u := api.Group("/user")
	u.Get("/profile/:uid", profile.Get)

	m := api.Group("/medical")
	m.Post("/form", medical.Submit)
	m.Get("/history/:userId", medical.History)
}
