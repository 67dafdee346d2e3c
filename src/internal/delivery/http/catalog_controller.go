package http

import (
	"flower-shop-service/src/internal/model"
	"flower-shop-service/src/internal/usecase"
	"flower-shop-service/src/pkg/log"
	"flower-shop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	Log     log.Log
	UseCase *usecase.CatalogUseCase
}

func NewCatalogController(useCase *usecase.CatalogUseCase, logger log.Log) *CatalogController {
	return &CatalogController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CatalogController) ListRegions(ctx *fiber.Ctx) error {
	result := c.UseCase.ListRegions(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Regions", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListProvinces(ctx *fiber.Ctx) error {
	result := c.UseCase.ListProvinces(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Provinces", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListBranches(ctx *fiber.Ctx) error {
	request := new(model.BranchFilterRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("CatalogController.ListBranches", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ListBranches(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Branches", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListVases(ctx *fiber.Ctx) error {
	request := new(model.VaseFilterRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("CatalogController.ListVases", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ListVases(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Vases", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListVaseColors(ctx *fiber.Ctx) error {
	result := c.UseCase.ListVaseColors(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Vase Colors", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListFlowerTypes(ctx *fiber.Ctx) error {
	result := c.UseCase.ListFlowerTypes(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Flower Types", fiber.StatusOK, ctx)
}
