package handlers

import (
	"context"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IngestHandler exposes the email parser and the polling loop.
type IngestHandler struct {
	ingestService  *service.IngestService
	pollingService *service.PollingService
	logger         *zap.Logger
}

func NewIngestHandler(ingestService *service.IngestService, pollingService *service.PollingService, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{
		ingestService:  ingestService,
		pollingService: pollingService,
		logger:         logger,
	}
}

// Parse godoc
// @Summary Parse bank email
// @Description Run the parser on a raw email without creating an expense
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ParseEmailRequest true "Email content"
// @Success 200 {object} dto.ParseEmailResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/email/parse [post]
func (h *IngestHandler) Parse(c *fiber.Ctx) error {
	var req dto.ParseEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	parsed, err := h.ingestService.Parse(c.Context(), &req)
	if err != nil {
		h.logger.Error("Email parse failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email parse failed",
		})
	}

	if parsed == nil {
		return c.JSON(dto.ParseEmailResponse{
			Success: false,
			Message: "No debit transaction found in email",
		})
	}

	return c.JSON(dto.ParseEmailResponse{
		Success: true,
		Transaction: &dto.ParsedTransactionResponse{
			Amount:        parsed.Amount,
			Merchant:      parsed.Merchant,
			Date:          parsed.Date.Format(time.RFC3339),
			Category:      parsed.Category,
			PaymentMethod: parsed.PaymentMethod,
		},
	})
}

// ParseAndCreate godoc
// @Summary Parse bank email and record expense
// @Description Parse a raw email and create an expense for the caller on success
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ParseEmailRequest true "Email content"
// @Success 201 {object} dto.ParseEmailResponse
// @Success 200 {object} dto.ParseEmailResponse
// @Router /api/v1/email/parse-and-create [post]
func (h *IngestHandler) ParseAndCreate(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req dto.ParseEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.ingestService.ParseAndCreate(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Email parse failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email parse failed",
		})
	}

	if expense == nil {
		return c.JSON(dto.ParseEmailResponse{
			Success: false,
			Message: "No debit transaction found in email",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ParseEmailResponse{
		Success: true,
		Expense: &dto.ExpenseResponse{
			ID:            expense.ID.String(),
			Amount:        expense.Amount,
			Merchant:      expense.Merchant,
			Category:      expense.Category,
			Date:          expense.Date.Format(time.RFC3339),
			PaymentMethod: expense.PaymentMethod,
			Source:        string(expense.Source),
			EmailID:       expense.EmailID,
			CreatedAt:     expense.CreatedAt.Format(time.RFC3339),
		},
	})
}

// PollingStatus godoc
// @Summary Email polling status
// @Tags email
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PollingStatusResponse
// @Router /api/v1/email/polling/status [get]
func (h *IngestHandler) PollingStatus(c *fiber.Ctx) error {
	return c.JSON(h.pollingService.Status())
}

// StartPolling godoc
// @Summary Start email polling
// @Tags email
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/email/polling/start [post]
func (h *IngestHandler) StartPolling(c *fiber.Ctx) error {
	// The loop must outlive this request.
	if err := h.pollingService.Start(context.Background()); err != nil {
		switch err {
		case service.ErrPollingRunning:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Polling is already running",
			})
		case service.ErrNoMailClient:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "No mail client configured",
			})
		default:
			h.logger.Error("Failed to start polling", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to start polling",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "started"})
}

// StopPolling godoc
// @Summary Stop email polling
// @Tags email
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /api/v1/email/polling/stop [post]
func (h *IngestHandler) StopPolling(c *fiber.Ctx) error {
	h.pollingService.Stop()
	return c.JSON(fiber.Map{"status": "stopped"})
}
