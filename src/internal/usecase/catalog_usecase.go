package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flower-shop-service/src/internal/model"
	"flower-shop-service/src/internal/repository"
	httpError "flower-shop-service/src/pkg/http-error"
	"flower-shop-service/src/pkg/log"
	"flower-shop-service/src/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const catalogCacheTTL = 10 * time.Minute

// defaultVaseProductTypeID is the product_type row for vases.
const defaultVaseProductTypeID = 2

type CatalogUseCase struct {
	Log               log.Log
	CatalogRepository repository.CatalogStore
	Redis             redis.UniversalClient
}

func NewCatalogUseCase(
	logger log.Log,
	catalogRepository repository.CatalogStore,
	redisClient redis.UniversalClient,
) *CatalogUseCase {
	return &CatalogUseCase{
		Log:               logger,
		CatalogRepository: catalogRepository,
		Redis:             redisClient,
	}
}

func (c *CatalogUseCase) ListRegions(ctx context.Context) utils.Result {
	return c.cached(ctx, "CATALOG:REGIONS", func() (interface{}, error) {
		return c.CatalogRepository.ListRegions(ctx)
	})
}

func (c *CatalogUseCase) ListProvinces(ctx context.Context) utils.Result {
	return c.cached(ctx, "CATALOG:PROVINCES", func() (interface{}, error) {
		return c.CatalogRepository.ListProvinces(ctx)
	})
}

func (c *CatalogUseCase) ListBranches(ctx context.Context, request *model.BranchFilterRequest) utils.Result {
	key := "CATALOG:BRANCHES"
	if request.RegionID != nil {
		key = fmt.Sprintf("CATALOG:BRANCHES:%d", *request.RegionID)
	}
	return c.cached(ctx, key, func() (interface{}, error) {
		return c.CatalogRepository.ListBranches(ctx, request.RegionID)
	})
}

func (c *CatalogUseCase) ListVases(ctx context.Context, request *model.VaseFilterRequest) utils.Result {
	productTypeID := request.ProductTypeID
	if productTypeID == 0 {
		productTypeID = defaultVaseProductTypeID
	}
	return c.cached(ctx, fmt.Sprintf("CATALOG:VASES:%d", productTypeID), func() (interface{}, error) {
		return c.CatalogRepository.ListVases(ctx, productTypeID)
	})
}

func (c *CatalogUseCase) ListVaseColors(ctx context.Context) utils.Result {
	return c.cached(ctx, "CATALOG:VASE_COLORS", func() (interface{}, error) {
		return c.CatalogRepository.ListVaseColors(ctx)
	})
}

func (c *CatalogUseCase) ListFlowerTypes(ctx context.Context) utils.Result {
	return c.cached(ctx, "CATALOG:FLOWER_TYPES", func() (interface{}, error) {
		return c.CatalogRepository.ListFlowerTypes(ctx)
	})
}

// cached is a read-through cache: catalog rows change rarely and every
// storefront screen requests them. A cache failure only costs a query.
func (c *CatalogUseCase) cached(ctx context.Context, key string, load func() (interface{}, error)) utils.Result {
	var result utils.Result

	if c.Redis != nil {
		cachedData, err := c.Redis.Get(ctx, key).Result()
		if err == nil && cachedData != "" {
			var data interface{}
			if err := json.Unmarshal([]byte(cachedData), &data); err == nil {
				result.Data = data
				return result
			}
		}
	}

	data, err := load()
	if err != nil {
		c.Log.Error("catalog-usecase", err.Error(), "load", key)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load catalog data"
		errObj.Detail = err.Error()
		result.Error = errObj
		return result
	}

	if c.Redis != nil {
		if payload, err := json.Marshal(data); err == nil {
			if redisErr := c.Redis.Set(ctx, key, payload, catalogCacheTTL).Err(); redisErr != nil {
				c.Log.Warn("catalog-usecase", redisErr.Error(), "cacheSet", key)
			}
		}
	}

	result.Data = data
	return result
}
