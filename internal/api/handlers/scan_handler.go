package handlers

import (
	"quikchek/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ScanHandler struct {
	scanService *service.ScanService
	logger      *zap.Logger
}

func NewScanHandler(scanService *service.ScanService, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
		logger:      logger,
	}
}

// ScanReceipt godoc
// @Summary Scan a receipt
// @Description Upload a receipt image or PDF, run OCR and extract amount, company and date suggestions
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt file (jpg, jpeg, png or pdf)"
// @Security Bearer
// @Success 200 {object} dto.ScanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/scan [post]
func (h *ScanHandler) ScanReceipt(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.scanService.Scan(c.Context(), src, file.Filename)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to scan receipt")
	}

	return c.JSON(resp)
}
