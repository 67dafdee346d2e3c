package config

import (
	"flower-shop-service/src/internal/delivery/http"
	"flower-shop-service/src/internal/delivery/http/route"
	"flower-shop-service/src/internal/gateway/messaging"
	"flower-shop-service/src/internal/gateway/slipverify"
	"flower-shop-service/src/internal/repository"
	"flower-shop-service/src/internal/usecase"
	"flower-shop-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "flower-shop-service/src/pkg/kafka/confluent"
	"flower-shop-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkgConfluent.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	orderRepository := repository.NewOrderRepository(config.DB)
	catalogRepository := repository.NewCatalogRepository(config.DB)
	orderProducer := messaging.NewOrderProducer(config.Producer, config.Log)
	slipVerifyClient := slipverify.NewClient(config.Config, config.Log)

	// setup use cases
	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		config.Config,
		orderProducer,
	)
	catalogUseCase := usecase.NewCatalogUseCase(
		config.Log,
		catalogRepository,
		config.Redis,
	)

	// setup controllers
	orderController := http.NewOrderController(orderUseCase, config.Log)
	catalogController := http.NewCatalogController(catalogUseCase, config.Log)
	paymentController := http.NewPaymentController(slipVerifyClient, orderUseCase, config.Log)

	routeConfig := route.RouteConfig{
		App:               config.App,
		OrderController:   orderController,
		CatalogController: catalogController,
		PaymentController: paymentController,
	}
	routeConfig.Setup()
}
