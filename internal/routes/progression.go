package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/progression"
)

// RegisterProgressionRoutes wires the XP, level, and prestige endpoints.
func RegisterProgressionRoutes(r fiber.Router, h *progression.Handler) {
	r.Post("/progression/tasks/complete", h.CompleteTask)
	r.Get("/progression/me", h.Summary)
	r.Get("/tiers/current", h.CurrentTier)
	r.Get("/prestige/preview", h.PrestigePreview)
	r.Post("/prestige", h.ExecutePrestige)
}
