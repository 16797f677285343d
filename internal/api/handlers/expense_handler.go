package handlers

import (
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create expense
// @Description Record a manual expense for the authenticated user
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Merchant == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "merchant and category are required",
		})
	}

	resp, err := h.expenseService.Create(c.Context(), userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List expenses
// @Description List expenses, optionally filtered by category or date range
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param start query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	if category := c.Query("category"); category != "" {
		resp, err := h.expenseService.ListByCategory(c.Context(), userID, category)
		if err != nil {
			return h.internalError(c, "Failed to list expenses", err)
		}
		return c.JSON(resp)
	}

	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw != "" || endRaw != "" {
		start, end, err := parseRange(startRaw, endRaw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		resp, err := h.expenseService.ListByDateRange(c.Context(), userID, start, end)
		if err != nil {
			return h.internalError(c, "Failed to list expenses", err)
		}
		return c.JSON(resp)
	}

	resp, err := h.expenseService.List(c.Context(), userID)
	if err != nil {
		return h.internalError(c, "Failed to list expenses", err)
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.expenseService.Get(c.Context(), userID, id)
	if err != nil {
		if err == service.ErrExpenseNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Expense not found",
			})
		}
		return h.internalError(c, "Failed to get expense", err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.expenseService.Update(c.Context(), userID, id, &req)
	if err != nil {
		if err == service.ErrExpenseNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Expense not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete expense
// @Tags expenses
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.expenseService.Delete(c.Context(), userID, id); err != nil {
		if err == service.ErrExpenseNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Expense not found",
			})
		}
		return h.internalError(c, "Failed to delete expense", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary Expense statistics
// @Description Totals for all time, this month, last month and per category
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ExpenseStatsResponse
// @Router /api/v1/expenses/stats [get]
func (h *ExpenseHandler) Stats(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.expenseService.Stats(c.Context(), userID)
	if err != nil {
		return h.internalError(c, "Failed to compute stats", err)
	}
	return c.JSON(resp)
}

func (h *ExpenseHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	h.logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now()

	var err error
	if startRaw != "" {
		if start, err = parseQueryDate(startRaw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endRaw != "" {
		if end, err = parseQueryDate(endRaw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

func parseQueryDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid date "+raw)
}
