//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	customerRepository "hotelier/internal/domains/customer/repository"
	customerService "hotelier/internal/domains/customer/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"

	"github.com/google/wire"

	authService "hotelier/internal/domains/auth/service"
	userRepository "hotelier/internal/domains/user/repository"
	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	customerHandler "hotelier/internal/handlers/customer"
	roomHandler "hotelier/internal/handlers/room"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	customerDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
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
		provideHealthFunc,
		provideCleanupFunc,
		http.New,
	)

	return &http.HTTP{}
}
