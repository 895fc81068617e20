package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type (
	SuccessResponseBody struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorResponseBody struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(SuccessResponseBody{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := ErrorResponseBody{
		Status:  false,
		Message: message,
	}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}
