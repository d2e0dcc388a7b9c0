package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"employee-attendance/config/middleware"
	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
)

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, *models.User, error)
}

type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

type AuthHandler struct {
	auth   Authenticator
	tokens TokenIssuer
}

func NewAuthHandler(auth Authenticator, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// Login godoc
// @Summary Login
// @Description Checks email and password and returns a PASETO token with the account profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if err := util.ValidateStruct(payload); err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	_, user, err := h.auth.Authenticate(ctx, payload.Email, payload.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.LoginSuccessResponse{
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless, the client discards its token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentClaims(c); !ok {
		return unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{
		Message: "Logged out. Please remove the token on the client.",
	})
}
