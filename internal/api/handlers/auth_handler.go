package handlers

import (
	"errors"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/internal/api/presenters"
	"healthy-eats-backend/internal/utils"
	"healthy-eats-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, utils.ToInputValidationError(err))
	}

	res, err := h.authService.Login(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrAdminNotConfigured) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
