package progression

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/economy"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/prestige"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/profile"
)

// Handler exposes progression HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a progression HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type completeTaskRequest struct {
	TaskID         string `json:"task_id"`
	PayAmountMinor int64  `json:"pay_amount_minor"`
}

// CompleteTask records a completed task for the authenticated user and
// returns the resulting award breakdown.
func (h *Handler) CompleteTask(c *fiber.Ctx) error {
	var req completeTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)

	award, err := h.service.CompleteTask(c.UserContext(), TaskCompletionInput{
		UserID:         uid,
		TaskID:         req.TaskID,
		PayAmountMinor: req.PayAmountMinor,
	})
	if err != nil {
		switch {
		case errors.Is(err, economy.ErrInvalidAmount):
			return fiber.NewError(http.StatusBadRequest, "invalid pay amount")
		case errors.Is(err, profile.ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "progression not found")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusCreated).JSON(award)
}

// Summary returns the progression overview for the authenticated user.
func (h *Handler) Summary(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	summary, err := h.service.Summarize(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "progression not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// Wallet returns the authenticated user's current balances.
func (h *Handler) Wallet(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	p, err := h.service.Get(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "progression not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"wallet": p.Wallet})
}

// CurrentTier reports the authenticated user's tier standing.
func (h *Handler) CurrentTier(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	summary, err := h.service.Summarize(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "progression not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	resp := fiber.Map{
		"tier":          summary.Tier,
		"tier_progress": summary.TierProgress,
		"is_max_tier":   summary.IsMaxTier,
		"fee_savings":   summary.FeeSavings,
	}
	if summary.NextTierID != "" {
		resp["next_tier"] = summary.NextTierID
		resp["levels_until_next_tier"] = summary.LevelsUntilTier
		resp["near_next_tier"] = summary.NearNextTier
	}
	return c.Status(http.StatusOK).JSON(resp)
}

type spendRequest struct {
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

// Spend debits a currency from the authenticated user's wallet.
func (h *Handler) Spend(c *fiber.Ctx) error {
	var req spendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)
	if req.Source == "" {
		req.Source = "purchase"
	}

	p, tx, err := h.service.Spend(c.UserContext(), uid, economy.Currency(req.Currency), req.Amount, req.Source, req.Description)
	if err != nil {
		return walletError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"wallet":      p.Wallet,
		"transaction": tx,
	})
}

type convertRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Convert exchanges one currency for another at the fixed rate.
func (h *Handler) Convert(c *fiber.Ctx) error {
	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	uid, _ := c.Locals("user_id").(string)

	p, tx, err := h.service.Convert(c.UserContext(), uid, economy.Currency(req.From), economy.Currency(req.To), req.Amount)
	if err != nil {
		return walletError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"wallet":      p.Wallet,
		"transaction": tx,
	})
}

// Transactions lists the authenticated user's newest audit records.
func (h *Handler) Transactions(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid limit")
	}

	txs, err := h.service.Transactions(c.UserContext(), uid, limit)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"transactions": txs})
}

// PrestigePreview shows the prestige outcome without committing it.
func (h *Handler) PrestigePreview(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	result, err := h.service.PrestigePreview(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "progression not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(result)
}

// ExecutePrestige commits the prestige reset for the authenticated user.
func (h *Handler) ExecutePrestige(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	p, result, err := h.service.ExecutePrestige(c.UserContext(), uid)
	if err != nil {
		switch {
		case errors.Is(err, prestige.ErrNotEligible):
			return fiber.NewError(http.StatusConflict, "not eligible for prestige")
		case errors.Is(err, profile.ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "progression not found")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"result":      result,
		"progression": p,
	})
}

func walletError(err error) error {
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		return fiber.NewError(http.StatusBadRequest, "insufficient funds")
	case errors.Is(err, economy.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, "invalid amount")
	case errors.Is(err, economy.ErrUnsupportedConversion):
		return fiber.NewError(http.StatusBadRequest, "unsupported conversion")
	case errors.Is(err, profile.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "progression not found")
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
