package http

import (
	"github.com/MKhiriev/go-commerce-edge/internal/auth"
	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withRequestTimeout(h.cfg.Server.RequestTimeout))

	// operational endpoints
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)
	router.Get("/metrics", h.metrics.ServeHTTP)

	// everything else is served by the dispatcher, including its own 404s
	d := h.dispatcher()
	router.NotFound(d.ServeHTTP)
	router.MethodNotAllowed(d.ServeHTTP)

	return router
}

// dispatcher builds the route table of the edge.
func (h *Handler) dispatcher() *dispatch.Dispatcher {
	d := dispatch.New(dispatch.Options{
		AllowedOrigin:     h.cfg.App.AllowedOrigin,
		ServiceCredential: h.cfg.API.ServiceCredential(),
		Observer:          h.metrics,
	}, h.logger)

	d.Post("/auth/login", auth.ModePublic, h.login)
	d.Post("/auth/callback", auth.ModePublic, h.authCallback)
	d.Post("/auth/logout", auth.ModeCaller, h.logout)
	d.Post("/auth/:action", auth.ModePublic, h.unknownAuthAction)

	d.Post("/orders", auth.ModePreferred, h.createOrder)
	d.Get("/orders/:orderId", auth.ModePreferred, h.getOrder)

	d.Get("/customers/:email", auth.ModePreferred, h.getCustomer)
	d.Get("/customers/:email/addresses", auth.ModePreferred, h.customerAddresses)
	d.Post("/customers/:email/addresses", auth.ModePreferred, h.customerAddresses)
	d.Get("/customers/:email/addresses/:addressId", auth.ModePreferred, h.customerAddresses)
	d.Delete("/customers/:email/addresses/:addressId", auth.ModePreferred, h.customerAddresses)
	d.Get("/customers/:email/:subroute", auth.ModePreferred, h.getCustomer)

	d.Get("/places/:action", auth.ModePublic, h.places)

	d.Post("/checkout", auth.ModePublic, h.createCheckout)
	d.Get("/checkout/session", auth.ModePublic, h.getCheckoutSession)

	d.Post("/webhooks/stripe", auth.ModeService, h.stripeWebhook)

	return d
}
