//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/internal/events"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	authService "lodge/internal/domains/auth/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	menuRepository "lodge/internal/domains/menu/repository"
	menuService "lodge/internal/domains/menu/service"
	paymentRepository "lodge/internal/domains/payment/repository"
	paymentService "lodge/internal/domains/payment/service"
	reportService "lodge/internal/domains/report/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	servicerequestRepository "lodge/internal/domains/servicerequest/repository"
	servicerequestService "lodge/internal/domains/servicerequest/service"
	tokenRepository "lodge/internal/domains/token/repository"
	tokenService "lodge/internal/domains/token/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"

	authHandler "lodge/internal/handlers/auth"
	bookingHandler "lodge/internal/handlers/booking"
	guestHandler "lodge/internal/handlers/guest"
	guestportalHandler "lodge/internal/handlers/guestportal"
	menuHandler "lodge/internal/handlers/menu"
	paymentHandler "lodge/internal/handlers/payment"
	reportHandler "lodge/internal/handlers/report"
	roomHandler "lodge/internal/handlers/room"
	servicerequestHandler "lodge/internal/handlers/servicerequest"
	userHandler "lodge/internal/handlers/user"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestRepository.NewSecondary,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var tokenDomain = wire.NewSet(
	tokenRepository.New,
	tokenService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var serviceRequestDomain = wire.NewSet(
	servicerequestRepository.New,
	servicerequestService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	tokenDomain,
	bookingDomain,
	paymentDomain,
	serviceRequestDomain,
	menuDomain,
	reportDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	servicerequestHandler.New,
	menuHandler.New,
	guestportalHandler.New,
	reportHandler.New,
	userHandler.New,
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
