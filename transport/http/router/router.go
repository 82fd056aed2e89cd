package router

import (
	"palmera/internal/handlers/booking"
	"palmera/internal/handlers/conference"
	"palmera/internal/handlers/health"
	"palmera/internal/handlers/menu"
	"palmera/internal/handlers/payment"
	"palmera/internal/handlers/profile"
	"palmera/internal/handlers/roomtype"
	"palmera/internal/handlers/testimonial"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health      health.Handler
	Booking     booking.Handler
	Payment     payment.Handler
	Conference  conference.Handler
	RoomType    roomtype.Handler
	Menu        menu.Handler
	Testimonial testimonial.Handler
	Profile     profile.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Conference.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
