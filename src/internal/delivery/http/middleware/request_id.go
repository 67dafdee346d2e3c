package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// NewRequestID assigns a uuid to requests that do not carry one.
func NewRequestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			ctx.Request().Header.Set(RequestIDHeader, requestID)
		}
		ctx.Set(RequestIDHeader, requestID)
		return ctx.Next()
	}
}
