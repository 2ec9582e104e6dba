package handlers

import (
	"quikchek/internal/dto"
	"quikchek/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AccountHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewAccountHandler(userService *service.UserService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetAccount godoc
// @Summary Get current account
// @Description Get the current user's profile
// @Tags account
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/account [get]
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := h.userService.Get(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to get account")
	}

	return c.JSON(user)
}

// GetFullAccount godoc
// @Summary Get account with all data
// @Description Get the user's profile together with all documents and categories
// @Tags account
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AccountFullResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/account/full [get]
func (h *AccountHandler) GetFullAccount(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.userService.GetFull(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to get account data")
	}

	return c.JSON(resp)
}

// UpdateAccount godoc
// @Summary Update account
// @Description Update the current user's username or password
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.UpdateAccountRequest true "Account fields"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/account [put]
func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.userService.Update(c.Context(), userID, &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update account")
	}

	return c.JSON(user)
}

// DeleteAccount godoc
// @Summary Delete account
// @Description Delete the current user and all associated data
// @Tags account
// @Produce json
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /api/v1/account [delete]
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.userService.Delete(c.Context(), userID); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete account")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
