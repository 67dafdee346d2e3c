package utils

import (
	httpError "flower-shop-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the envelope every usecase returns to its controller.
type Result struct {
	Data  interface{}
	Error error
}

type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type apiErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(apiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(apiErrorResponse{
			Success: false,
			Error:   commonErr.Message,
			Detail:  commonErr.Detail,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apiErrorResponse{
		Success: false,
		Error:   "internal server error",
		Detail:  err.Error(),
	})
}
