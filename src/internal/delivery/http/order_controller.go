package http

import (
	"flower-shop-service/src/internal/model"
	"flower-shop-service/src/internal/usecase"
	"flower-shop-service/src/pkg/log"
	"flower-shop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) SubmitOrder(ctx *fiber.Ctx) error {
	request := new(model.SubmitOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.SubmitOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SubmitOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Created", fiber.StatusOK, ctx)
}

func (c *OrderController) TrackOrder(ctx *fiber.Ctx) error {
	request := new(model.TrackOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.TrackOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.TrackOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Found", fiber.StatusOK, ctx)
}

func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.UpdateOrderStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderCode = ctx.Params("code")
	result := c.UseCase.UpdateOrderStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Status Updated", fiber.StatusOK, ctx)
}
