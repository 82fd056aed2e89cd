//go:build wireinject
// +build wireinject

package di

import (
	"palmera/config"
	"palmera/infras/jwt"
	"palmera/infras/kafka"
	"palmera/infras/mailer"
	"palmera/infras/otel"
	"palmera/infras/paygate"
	"palmera/infras/postgres"
	"palmera/infras/redis"
	"palmera/infras/s3"
	"palmera/permissions"
	"palmera/shared/cache"
	"palmera/transport/http"
	"palmera/transport/http/middleware"
	"palmera/transport/http/router"

	auditRepository "palmera/internal/domains/audit/repository"
	bookingRepository "palmera/internal/domains/booking/repository"
	bookingService "palmera/internal/domains/booking/service"
	conferenceRepository "palmera/internal/domains/conference/repository"
	conferenceService "palmera/internal/domains/conference/service"
	menuRepository "palmera/internal/domains/menu/repository"
	menuService "palmera/internal/domains/menu/service"
	"palmera/internal/domains/notification"
	profileRepository "palmera/internal/domains/profile/repository"
	profileService "palmera/internal/domains/profile/service"
	roomTypeRepository "palmera/internal/domains/roomtype/repository"
	roomTypeService "palmera/internal/domains/roomtype/service"
	testimonialRepository "palmera/internal/domains/testimonial/repository"
	testimonialService "palmera/internal/domains/testimonial/service"

	bookingHandler "palmera/internal/handlers/booking"
	conferenceHandler "palmera/internal/handlers/conference"
	healthHandler "palmera/internal/handlers/health"
	menuHandler "palmera/internal/handlers/menu"
	paymentHandler "palmera/internal/handlers/payment"
	profileHandler "palmera/internal/handlers/profile"
	roomTypeHandler "palmera/internal/handlers/roomtype"
	testimonialHandler "palmera/internal/handlers/testimonial"

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
	mailer.New,
	paygate.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	notification.New,
)

var conferenceDomain = wire.NewSet(
	conferenceRepository.New,
	conferenceService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var siteContentDomains = wire.NewSet(
	menuRepository.New,
	menuService.New,
	testimonialRepository.New,
	testimonialService.New,
	profileRepository.New,
	profileService.New,
)

var domains = wire.NewSet(
	auditRepository.New,
	bookingDomain,
	conferenceDomain,
	roomTypeDomain,
	siteContentDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	conferenceHandler.New,
	roomTypeHandler.New,
	menuHandler.New,
	testimonialHandler.New,
	profileHandler.New,
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
