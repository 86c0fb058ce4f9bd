package util

import (
	"github.com/fadilmartias/placement-portal/internal/config"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
}

type ErrorBody struct {
	Error      string `json:"error"`
	DevMessage string `json:"dev_message,omitempty"`
}

// ErrorResponse writes {"error": message}. Outside production the first error
// is echoed as dev_message.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := ErrorBody{Error: params.Message}
	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil && errs[0].Error() != params.Message {
			body.DevMessage = errs[0].Error()
		}
		if params.DevMessage != "" {
			body.DevMessage = params.DevMessage
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}
