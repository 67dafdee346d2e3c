package route

import (
	"flower-shop-service/src/internal/delivery/http"
	"flower-shop-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	OrderController   *http.OrderController
	CatalogController *http.CatalogController
	PaymentController *http.PaymentController
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewRequestID())
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupCatalogRoute()
	c.SetupOrderRoute()
	c.SetupPaymentRoute()
}

func (c *RouteConfig) SetupCatalogRoute() {
	c.App.Get("/catalog/v1/regions", c.CatalogController.ListRegions)
	c.App.Get("/catalog/v1/provinces", c.CatalogController.ListProvinces)
	c.App.Get("/catalog/v1/branches", c.CatalogController.ListBranches)
	c.App.Get("/catalog/v1/vases", c.CatalogController.ListVases)
	c.App.Get("/catalog/v1/vase-colors", c.CatalogController.ListVaseColors)
	c.App.Get("/catalog/v1/flower-types", c.CatalogController.ListFlowerTypes)
}

func (c *RouteConfig) SetupOrderRoute() {
	c.App.Post("/orders/v1", c.OrderController.SubmitOrder)
	c.App.Post("/orders/v1/search", c.OrderController.TrackOrder)
	c.App.Patch("/orders/v1/:code/status", c.OrderController.UpdateOrderStatus)
}

func (c *RouteConfig) SetupPaymentRoute() {
	c.App.Post("/payments/v1/check-slip", c.PaymentController.CheckSlip)
}
