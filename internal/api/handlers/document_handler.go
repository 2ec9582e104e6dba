package handlers

import (
	"quikchek/internal/dto"
	"quikchek/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService *service.DocumentService
	logger     *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// CreateDocument godoc
// @Summary Create a document
// @Description Create an expense document, optionally linked to a scanned receipt image
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.CreateDocumentRequest true "Document data"
// @Security Bearer
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents [post]
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	doc, err := h.docService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to create document")
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateDocument godoc
// @Summary Update a document
// @Description Update an existing document's fields and category assignments
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Document data"
// @Security Bearer
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	var req dto.UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	doc, err := h.docService.Update(c.Context(), userID, documentID, &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update document")
	}

	return c.JSON(doc)
}

// GetDocument godoc
// @Summary Get a document
// @Description Get a single document with its categories
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	doc, err := h.docService.Get(c.Context(), userID, documentID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to get document")
	}

	return c.JSON(doc)
}

// ListDocuments godoc
// @Summary List user's documents
// @Description Get all of the user's documents, newest first
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	docs, err := h.docService.List(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to list documents")
	}

	return c.JSON(docs)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Description Delete a document and its stored receipt image
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	if err := h.docService.Delete(c.Context(), userID, documentID); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete document")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetDocumentCategories godoc
// @Summary List a document's categories
// @Description Get the spending categories assigned to a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id}/categories [get]
func (h *DocumentHandler) GetDocumentCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	categories, err := h.docService.Categories(c.Context(), userID, documentID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to get document categories")
	}

	return c.JSON(categories)
}
