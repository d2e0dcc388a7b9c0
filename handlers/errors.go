package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-attendance/models"
)

const requestTimeout = 5 * time.Second

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

// respondError maps the error taxonomy onto HTTP responses. Store failures
// are logged and reported without internals.
func respondError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	}

	switch {
	case errors.Is(err, models.ErrNoOpenSession),
		errors.Is(err, models.ErrSessionAlreadyOpen),
		errors.Is(err, models.ErrEmailInUse),
		errors.Is(err, models.ErrEmployeeIDInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrWeakPassword),
		errors.Is(err, models.ErrInvalidEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrAccountNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("ERROR: %s %s [%v]: %v", c.Method(), c.Path(), c.Locals("requestid"), err)
	if errors.Is(err, models.ErrStore) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Operation failed. Please try again."})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
}
