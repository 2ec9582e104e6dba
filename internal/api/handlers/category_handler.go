package handlers

import (
	"quikchek/internal/dto"
	"quikchek/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// CreateCategory godoc
// @Summary Create a spending category
// @Description Create a new spending category for the current user
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category data"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories godoc
// @Summary List spending categories
// @Description Get all of the user's spending categories in creation order
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categories, err := h.categoryService.List(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to list categories")
	}

	return c.JSON(categories)
}

// GetCategoryDocuments godoc
// @Summary List a category's documents
// @Description Get all documents assigned to a spending category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id}/documents [get]
func (h *CategoryHandler) GetCategoryDocuments(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	docs, err := h.categoryService.Documents(c.Context(), userID, categoryID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to list category documents")
	}

	return c.JSON(docs)
}

// UpdateCategory godoc
// @Summary Rename a spending category
// @Description Rename a category; the Other category cannot be renamed
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "New name"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.categoryService.Rename(c.Context(), userID, categoryID, &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update category")
	}

	return c.JSON(category)
}

// DeleteCategory godoc
// @Summary Delete a spending category
// @Description Delete an empty category; the Other category and categories with documents cannot be deleted
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	if err := h.categoryService.Delete(c.Context(), userID, categoryID); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
