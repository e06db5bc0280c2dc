package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/badges"
)

// RegisterBadgeRoutes wires the public badge catalog endpoints.
func RegisterBadgeRoutes(r fiber.Router, catalog *badges.Catalog) {
	r.Get("/badges", func(c *fiber.Ctx) error {
		if rarity := c.Query("rarity"); rarity != "" {
			return c.Status(http.StatusOK).JSON(fiber.Map{"badges": catalog.ByRarity(rarity)})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"badges": catalog.All()})
	})

	r.Get("/badges/:badgeId", func(c *fiber.Ctx) error {
		badge, ok := catalog.Get(c.Params("badgeId"))
		if !ok {
			return fiber.NewError(http.StatusNotFound, "badge not found")
		}
		return c.Status(http.StatusOK).JSON(badge)
	})
}
