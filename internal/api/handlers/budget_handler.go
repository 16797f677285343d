package handlers

import (
	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService  *service.BudgetService
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, expenseService *service.ExpenseService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService:  budgetService,
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create budget
// @Description Set a monthly budget for a category
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 409 {object} map[string]string
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "category is required",
		})
	}

	resp, err := h.budgetService.Create(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrBudgetExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Budget already exists for category",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BudgetResponse
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.budgetService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list budgets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list budgets",
		})
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Update budget
// @Description Change the monthly amount for a category budget
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category"
// @Param request body dto.UpdateBudgetRequest true "New amount"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{category} [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.budgetService.Update(c.Context(), userID, c.Params("category"), &req)
	if err != nil {
		if err == service.ErrBudgetNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Budget not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete budget
// @Tags budgets
// @Security BearerAuth
// @Param category path string true "Category"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{category} [delete]
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	if err := h.budgetService.Delete(c.Context(), userID, c.Params("category")); err != nil {
		if err == service.ErrBudgetNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Budget not found",
			})
		}
		h.logger.Error("Failed to delete budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete budget",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Status godoc
// @Summary Budget status
// @Description Current-month spending against every budget, with alerts
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BudgetStatusResponse
// @Router /api/v1/budgets/status [get]
func (h *BudgetHandler) Status(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.expenseService.BudgetStatus(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to check budget status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check budget status",
		})
	}
	return c.JSON(resp)
}
