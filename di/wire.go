//go:build wireinject
// +build wireinject

package di

import (
	"handy/config"
	"handy/infras/jwt"
	"handy/infras/kafka"
	"handy/infras/otel"
	"handy/infras/postgres"
	"handy/infras/redis"
	"handy/internal/domains/notifier"
	"handy/permissions"
	"handy/shared/cache"
	"handy/transport/http"
	"handy/transport/http/middleware"
	"handy/transport/http/router"

	addressRepository "handy/internal/domains/address/repository"
	addressService "handy/internal/domains/address/service"
	bookingRepository "handy/internal/domains/booking/repository"
	bookingService "handy/internal/domains/booking/service"
	catalogRepository "handy/internal/domains/catalog/repository"
	catalogService "handy/internal/domains/catalog/service"
	providerRepository "handy/internal/domains/provider/repository"
	providerService "handy/internal/domains/provider/service"
	walletRepository "handy/internal/domains/wallet/repository"
	walletService "handy/internal/domains/wallet/service"

	addressHandler "handy/internal/handlers/address"
	bookingHandler "handy/internal/handlers/booking"
	catalogHandler "handy/internal/handlers/catalog"
	providerHandler "handy/internal/handlers/provider"
	walletHandler "handy/internal/handlers/wallet"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var addressDomain = wire.NewSet(
	addressRepository.New,
	addressService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var providerDomain = wire.NewSet(
	providerRepository.New,
	providerRepository.NewSchedule,
	providerService.New,
)

var walletDomain = wire.NewSet(
	walletRepository.New,
	walletService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	notifier.New,
)

var domains = wire.NewSet(
	addressDomain,
	catalogDomain,
	providerDomain,
	walletDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	addressHandler.New,
	bookingHandler.New,
	catalogHandler.New,
	providerHandler.New,
	walletHandler.New,
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
