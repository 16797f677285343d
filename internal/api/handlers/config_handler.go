package handlers

import (
	"errors"

	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConfigHandler exposes the parser configuration: bank patterns and
// categories.
type ConfigHandler struct {
	configService *service.ConfigService
	logger        *zap.Logger
}

func NewConfigHandler(configService *service.ConfigService, logger *zap.Logger) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
		logger:        logger,
	}
}

// CreateBankPattern godoc
// @Summary Create bank pattern
// @Description Register extraction patterns for a bank sender domain
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BankPatternRequest true "Bank pattern"
// @Success 201 {object} dto.BankPatternResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/bank-patterns [post]
func (h *ConfigHandler) CreateBankPattern(c *fiber.Ctx) error {
	var req dto.BankPatternRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.configService.CreateBankPattern(c.Context(), &req)
	if err != nil {
		return h.configError(c, "Failed to create bank pattern", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListBankPatterns godoc
// @Summary List bank patterns
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BankPatternResponse
// @Router /api/v1/bank-patterns [get]
func (h *ConfigHandler) ListBankPatterns(c *fiber.Ctx) error {
	resp, err := h.configService.ListBankPatterns(c.Context())
	if err != nil {
		return h.configError(c, "Failed to list bank patterns", err)
	}
	return c.JSON(resp)
}

// GetBankPattern godoc
// @Summary Get bank pattern
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pattern ID"
// @Success 200 {object} dto.BankPatternResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/bank-patterns/{id} [get]
func (h *ConfigHandler) GetBankPattern(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.configService.GetBankPattern(c.Context(), id)
	if err != nil {
		return h.configError(c, "Failed to get bank pattern", err)
	}
	return c.JSON(resp)
}

// UpdateBankPattern godoc
// @Summary Update bank pattern
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pattern ID"
// @Param request body dto.BankPatternRequest true "Bank pattern"
// @Success 200 {object} dto.BankPatternResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/bank-patterns/{id} [put]
func (h *ConfigHandler) UpdateBankPattern(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.BankPatternRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.configService.UpdateBankPattern(c.Context(), id, &req)
	if err != nil {
		return h.configError(c, "Failed to update bank pattern", err)
	}
	return c.JSON(resp)
}

// DeleteBankPattern godoc
// @Summary Delete bank pattern
// @Tags configuration
// @Security BearerAuth
// @Param id path string true "Pattern ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/bank-patterns/{id} [delete]
func (h *ConfigHandler) DeleteBankPattern(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.configService.DeleteBankPattern(c.Context(), id); err != nil {
		return h.configError(c, "Failed to delete bank pattern", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory godoc
// @Summary Create category
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *ConfigHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	resp, err := h.configService.CreateCategory(c.Context(), &req)
	if err != nil {
		return h.configError(c, "Failed to create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCategories godoc
// @Summary List categories
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories [get]
func (h *ConfigHandler) ListCategories(c *fiber.Ctx) error {
	resp, err := h.configService.ListCategories(c.Context())
	if err != nil {
		return h.configError(c, "Failed to list categories", err)
	}
	return c.JSON(resp)
}

// GetCategory godoc
// @Summary Get category
// @Tags configuration
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [get]
func (h *ConfigHandler) GetCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.configService.GetCategory(c.Context(), id)
	if err != nil {
		return h.configError(c, "Failed to get category", err)
	}
	return c.JSON(resp)
}

// UpdateCategory godoc
// @Summary Update category
// @Tags configuration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [put]
func (h *ConfigHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.configService.UpdateCategory(c.Context(), id, &req)
	if err != nil {
		return h.configError(c, "Failed to update category", err)
	}
	return c.JSON(resp)
}

// DeleteCategory godoc
// @Summary Delete category
// @Tags configuration
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [delete]
func (h *ConfigHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.configService.DeleteCategory(c.Context(), id); err != nil {
		return h.configError(c, "Failed to delete category", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ConfigHandler) configError(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrBankPatternNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bank pattern not found",
		})
	case errors.Is(err, service.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	case errors.Is(err, service.ErrInvalidPattern):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		h.logger.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msg,
		})
	}
}
