package routes

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/rewards"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/tiers"
)

// RegisterTierRoutes wires the public tier table endpoints. The table is
// static configuration, so no authentication is required.
func RegisterTierRoutes(r fiber.Router, registry *tiers.Registry, calc *rewards.Calculator) {
	r.Get("/tiers", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"tiers": registry.Tiers()})
	})

	// Tier resolution for an arbitrary level, used by posting previews.
	r.Get("/tiers/at/:level", func(c *fiber.Ctx) error {
		level, err := strconv.Atoi(c.Params("level"))
		if err != nil || level < 1 {
			return fiber.NewError(http.StatusBadRequest, "invalid level")
		}
		tier := registry.TierForLevel(level)
		resp := fiber.Map{
			"tier":        tier,
			"fee_savings": calc.FeeSavingsVsBaseline(level),
		}
		if next, ok := registry.NextTier(level); ok {
			resp["next_tier"] = next.ID
			resp["levels_until_next_tier"] = registry.LevelsUntilNextTier(level)
		}
		return c.Status(http.StatusOK).JSON(resp)
	})
}
