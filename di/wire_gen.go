// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/internal/domains/auth/service"
	repository4 "lodge/internal/domains/booking/repository"
	service5 "lodge/internal/domains/booking/service"
	repository2 "lodge/internal/domains/guest/repository"
	service2 "lodge/internal/domains/guest/service"
	repository8 "lodge/internal/domains/menu/repository"
	service8 "lodge/internal/domains/menu/service"
	repository5 "lodge/internal/domains/payment/repository"
	service6 "lodge/internal/domains/payment/service"
	service9 "lodge/internal/domains/report/service"
	repository3 "lodge/internal/domains/room/repository"
	service3 "lodge/internal/domains/room/service"
	repository6 "lodge/internal/domains/servicerequest/repository"
	service7 "lodge/internal/domains/servicerequest/service"
	repository7 "lodge/internal/domains/token/repository"
	service4 "lodge/internal/domains/token/service"
	"lodge/internal/domains/user/repository"
	service10 "lodge/internal/domains/user/service"
	"lodge/internal/events"
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/guestportal"
	"lodge/internal/handlers/menu"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/report"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/servicerequest"
	"lodge/internal/handlers/user"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryGuest := repository2.New(connection, otelOtel)
	secondaryGuest := repository2.NewSecondary(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceGuest := service2.New(repositoryGuest, secondaryGuest, configConfig, redisCache, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	repositoryRoom := repository3.New(connection, otelOtel)
	serviceRoom := service3.New(repositoryRoom, configConfig, redisCache, otelOtel)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryBooking := repository4.New(connection, otelOtel)
	repositoryPayment := repository5.New(connection, otelOtel)
	serviceRequest := repository6.New(connection, otelOtel)
	roomToken := repository7.New(connection, otelOtel)
	serviceRoomToken := service4.New(roomToken, configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := events.NewPublisher(kafkaClient, configConfig)
	serviceBooking := service5.New(repositoryBooking, repositoryRoom, repositoryGuest, secondaryGuest, repositoryPayment, serviceRequest, serviceRoomToken, publisher, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, serviceRoomToken, otelOtel)
	servicePayment := service6.New(repositoryPayment, repositoryBooking, configConfig, redisCache, otelOtel)
	paymentHandler := payment.New(servicePayment, otelOtel)
	serviceServiceRequest := service7.New(serviceRequest, configConfig, redisCache, publisher, otelOtel)
	servicerequestHandler := servicerequest.New(serviceServiceRequest, otelOtel)
	menuItem := repository8.New(connection, otelOtel)
	serviceMenuItem := service8.New(menuItem, configConfig, redisCache, otelOtel)
	menuHandler := menu.New(serviceMenuItem, otelOtel)
	guestportalHandler := guestportal.New(serviceRoomToken, serviceBooking, serviceServiceRequest, serviceMenuItem, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceReport := service9.New(repositoryBooking, repositoryRoom, repositoryPayment, s3S3, otelOtel)
	reportHandler := report.New(serviceReport, otelOtel)
	serviceUser := service10.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:           handler,
		Guest:          guestHandler,
		Room:           roomHandler,
		Booking:        bookingHandler,
		Payment:        paymentHandler,
		ServiceRequest: servicerequestHandler,
		Menu:           menuHandler,
		GuestPortal:    guestportalHandler,
		Report:         reportHandler,
		User:           userHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, events.NewPublisher)

var guestDomain = wire.NewSet(repository2.New, repository2.NewSecondary, service2.New)

var roomDomain = wire.NewSet(repository3.New, service3.New)

var tokenDomain = wire.NewSet(repository7.New, service4.New)

var bookingDomain = wire.NewSet(repository4.New, service5.New)

var paymentDomain = wire.NewSet(repository5.New, service6.New)

var serviceRequestDomain = wire.NewSet(repository6.New, service7.New)

var menuDomain = wire.NewSet(repository8.New, service8.New)

var reportDomain = wire.NewSet(service9.New)

var userDomain = wire.NewSet(repository.New, service10.New)

var authDomain = wire.NewSet(service.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, guest.New, room.New, booking.New, payment.New, servicerequest.New, menu.New, guestportal.New, report.New, user.New, router.New)
