package middleware

import (
	"fmt"
	"time"

	"flower-shop-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs every request with method, path, status and latency.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		latency := time.Since(start)

		logger := log.GetLogger()
		logger.Info(
			"http-request",
			fmt.Sprintf("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), latency),
			"request",
			ctx.Get(RequestIDHeader),
		)
		return err
	}
}
