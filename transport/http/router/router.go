package router

import (
	"lotus/internal/handlers/booking"
	"lotus/internal/handlers/catalog"
	"lotus/internal/handlers/customer"
	"lotus/internal/handlers/report"
	"lotus/internal/handlers/therapist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog   catalog.Handler
	Therapist therapist.Handler
	Customer  customer.Handler
	Booking   booking.Handler
	Report    report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Therapist.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
