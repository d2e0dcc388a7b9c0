package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"

	"employee-attendance/config/middleware"
	"employee-attendance/repository"
)

const badgeSize = 256

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe godoc
// @Summary Own profile
// @Description Profile of the authenticated employee
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee profile not found"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetBadge godoc
// @Summary Employee badge
// @Description PNG QR code encoding the caller's employee code
// @Tags Users
// @Produce png
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/me/badge [get]
func (h *UserHandler) GetBadge(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil || user.EmployeeID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee profile not found"})
	}

	png, err := qrcode.Encode(user.EmployeeID, qrcode.Medium, badgeSize)
	if err != nil {
		return respondError(c, fmt.Errorf("encode badge: %w", err))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
