package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/progression"
)

// RegisterWalletRoutes wires the virtual currency endpoints.
func RegisterWalletRoutes(r fiber.Router, h *progression.Handler) {
	r.Get("/wallet", h.Wallet)
	r.Post("/wallet/spend", h.Spend)
	r.Post("/wallet/convert", h.Convert)
	r.Get("/wallet/transactions", h.Transactions)
}
