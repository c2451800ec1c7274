// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"lotus/config"
	"lotus/infras/jwt"
	"lotus/infras/kafka"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/infras/redis"
	"lotus/infras/s3"
	repository4 "lotus/internal/domains/booking/repository"
	service4 "lotus/internal/domains/booking/service"
	"lotus/internal/domains/catalog/repository"
	"lotus/internal/domains/catalog/service"
	repository3 "lotus/internal/domains/customer/repository"
	service3 "lotus/internal/domains/customer/service"
	service5 "lotus/internal/domains/report/service"
	repository2 "lotus/internal/domains/therapist/repository"
	service2 "lotus/internal/domains/therapist/service"
	"lotus/internal/handlers/booking"
	"lotus/internal/handlers/catalog"
	"lotus/internal/handlers/customer"
	"lotus/internal/handlers/report"
	"lotus/internal/handlers/therapist"
	"lotus/shared/cache"
	"lotus/transport/http"
	"lotus/transport/http/middleware"
	"lotus/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryCatalog := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceCatalog := service.New(repositoryCatalog, configConfig, redisCache, otelOtel)
	handler := catalog.New(serviceCatalog, otelOtel)
	repositoryTherapist := repository2.New(connection, otelOtel)
	serviceTherapist := service2.New(repositoryTherapist, configConfig, redisCache, otelOtel)
	therapistHandler := therapist.New(serviceTherapist, otelOtel)
	repositoryCustomer := repository3.New(connection, otelOtel)
	repositoryBooking := repository4.New(connection, otelOtel)
	publisher := kafka.New(configConfig)
	serviceCustomer := service3.New(repositoryCustomer, repositoryBooking, configConfig, redisCache, otelOtel, publisher)
	customerHandler := customer.New(serviceCustomer, otelOtel)
	serviceBooking := service4.New(repositoryBooking, serviceCatalog, serviceTherapist, serviceCustomer, configConfig, redisCache, otelOtel, publisher)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceReport := service5.New(repositoryBooking, repositoryTherapist, repositoryCatalog, s3S3, configConfig, redisCache, otelOtel)
	reportHandler := report.New(serviceReport, otelOtel)
	domainHandlers := router.DomainHandlers{
		Catalog:   handler,
		Therapist: therapistHandler,
		Customer:  customerHandler,
		Booking:   bookingHandler,
		Report:    reportHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	jwtJWT := jwt.New(configConfig)
	auth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, auth)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var catalogDomain = wire.NewSet(repository.New, service.New)

var therapistDomain = wire.NewSet(repository2.New, service2.New)

var customerDomain = wire.NewSet(repository3.New, service3.New)

var bookingDomain = wire.NewSet(repository4.New, service4.New)

var reportDomain = wire.NewSet(service5.New)

var domains = wire.NewSet(
	catalogDomain,
	therapistDomain,
	customerDomain,
	bookingDomain,
	reportDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), catalog.New, therapist.New, customer.New, booking.New, report.New, router.New)
