package routes

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/account"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/progression"
)

// RegisterAccountRoutes wires account endpoints and auto-provisions a
// progression record on registration.
func RegisterAccountRoutes(r fiber.Router, accounts *account.Service, progressions *progression.Service, logger *slog.Logger) {
	r.Post("/accounts/register", func(c *fiber.Ctx) error {
		var req struct {
			Handle   string `json:"handle"`
			PIN      string `json:"pin"`
			Role     string `json:"role"`
			DeviceID string `json:"device_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		user, err := accounts.Register(c.UserContext(), account.Credentials{Handle: req.Handle, PIN: req.PIN, Role: req.Role, DeviceID: req.DeviceID})
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		p, err := progressions.Provision(c.UserContext(), user.ID)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "progression provisioning failed")
		}
		if logger != nil {
			logger.Info("account.register completed",
				slog.String("user_id", user.ID),
				slog.String("handle", user.Handle),
				slog.String("role", user.Role),
				slog.Int("status", http.StatusCreated),
			)
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"user_id":   user.ID,
			"handle":    user.Handle,
			"role":      user.Role,
			"device_id": user.DeviceID,
			"level":     p.Level,
			"xp":        p.XP,
		})
	})
}
