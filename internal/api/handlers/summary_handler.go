package handlers

import (
	"strconv"
	"time"

	"quikchek/internal/dto"
	"quikchek/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
	logger         *zap.Logger
}

func NewSummaryHandler(summaryService *service.SummaryService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// GetSummary godoc
// @Summary Get spending summary
// @Description Get donut chart data for the 7-day, 30-day and all-time windows, plus an optional custom window
// @Tags summary
// @Produce json
// @Param start query string false "Custom window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Custom window end (RFC3339 or YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	start, err := parseQueryTime(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start date",
		})
	}
	end, err := parseQueryTime(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid end date",
		})
	}

	resp, err := h.summaryService.Overview(c.Context(), userID, start, end)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to build summary")
	}

	return c.JSON(resp)
}

// GetTimeSeries godoc
// @Summary Get cumulative spending series
// @Description Get per-category cumulative daily totals for the area chart
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TimeSeriesResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary/timeseries [get]
func (h *SummaryHandler) GetTimeSeries(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.summaryService.TimeSeries(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to build time series")
	}

	return c.JSON(resp)
}

// GetComparison godoc
// @Summary Get period comparison
// @Description Get per-category totals across the seeded weekly periods and custom periods
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ComparisonResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary/periods [get]
func (h *SummaryHandler) GetComparison(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.summaryService.Comparison(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to build comparison")
	}

	return c.JSON(resp)
}

// AddPeriod godoc
// @Summary Add a custom period
// @Description Add a custom comparison period after the seeded weekly ones
// @Tags summary
// @Accept json
// @Produce json
// @Param request body dto.AddPeriodRequest true "Period bounds"
// @Security Bearer
// @Success 201 {object} dto.ComparisonResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary/periods [post]
func (h *SummaryHandler) AddPeriod(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.AddPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.summaryService.AddPeriod(c.Context(), userID, &req); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to add period")
	}

	resp, err := h.summaryService.Comparison(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to build comparison")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdatePeriod godoc
// @Summary Update a custom period
// @Description Change the bounds of a custom period; seeded periods cannot be edited
// @Tags summary
// @Accept json
// @Produce json
// @Param index path int true "Period index"
// @Param request body dto.UpdatePeriodRequest true "New bounds"
// @Security Bearer
// @Success 200 {object} dto.ComparisonResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/summary/periods/{index} [put]
func (h *SummaryHandler) UpdatePeriod(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid period index",
		})
	}

	var req dto.UpdatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.summaryService.UpdatePeriod(c.Context(), userID, index, &req); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update period")
	}

	resp, err := h.summaryService.Comparison(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to build comparison")
	}

	return c.JSON(resp)
}

// DeletePeriod godoc
// @Summary Delete a custom period
// @Description Remove a custom period; later custom periods renumber
// @Tags summary
// @Produce json
// @Param index path int true "Period index"
// @Security Bearer
// @Success 200 {object} dto.ComparisonResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/summary/periods/{index} [delete]
func (h *SummaryHandler) DeletePeriod(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid period index",
		})
	}

	if err := h.summaryService.DeletePeriod(c.Context(), userID, index); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete period")
	}

	resp, err := h.summaryService.Comparison(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to build comparison")
	}

	return c.JSON(resp)
}

// GetChart godoc
// @Summary Render a summary chart
// @Description Render a donut or bar chart PNG for a summary window
// @Tags summary
// @Produce png
// @Param kind query string false "Chart kind: donut or bar" default(donut)
// @Param window query string false "Window: 7d, 30d, all or custom" default(all)
// @Param mode query string false "Attribution mode: split or combo" default(split)
// @Param start query string false "Custom window start"
// @Param end query string false "Custom window end"
// @Security Bearer
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary/chart [get]
func (h *SummaryHandler) GetChart(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	start, err := parseQueryTime(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start date",
		})
	}
	end, err := parseQueryTime(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid end date",
		})
	}

	png, err := h.summaryService.Chart(c.Context(), userID, c.Query("kind"), c.Query("window"), c.Query("mode"), start, end)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to render chart")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func parseQueryTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
