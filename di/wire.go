//go:build wireinject
// +build wireinject

package di

import (
	"lotus/config"
	"lotus/infras/jwt"
	"lotus/infras/kafka"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/infras/redis"
	"lotus/infras/s3"
	"lotus/shared/cache"
	"lotus/transport/http"
	"lotus/transport/http/middleware"
	"lotus/transport/http/router"

	bookingRepository "lotus/internal/domains/booking/repository"
	bookingService "lotus/internal/domains/booking/service"
	catalogRepository "lotus/internal/domains/catalog/repository"
	catalogService "lotus/internal/domains/catalog/service"
	customerRepository "lotus/internal/domains/customer/repository"
	customerService "lotus/internal/domains/customer/service"
	reportService "lotus/internal/domains/report/service"
	therapistRepository "lotus/internal/domains/therapist/repository"
	therapistService "lotus/internal/domains/therapist/service"

	bookingHandler "lotus/internal/handlers/booking"
	catalogHandler "lotus/internal/handlers/catalog"
	customerHandler "lotus/internal/handlers/customer"
	reportHandler "lotus/internal/handlers/report"
	therapistHandler "lotus/internal/handlers/therapist"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var therapistDomain = wire.NewSet(
	therapistRepository.New,
	therapistService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	therapistDomain,
	customerDomain,
	bookingDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	therapistHandler.New,
	customerHandler.New,
	bookingHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
