package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/auth"
)

// RegisterAuthRoutes wires the public authentication endpoints. Logout
// requires a valid token and is wired into the protected group.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/refresh", h.Refresh)
}
