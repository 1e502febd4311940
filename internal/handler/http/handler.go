package http

import (
	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/metrics"
	"github.com/MKhiriev/go-commerce-edge/internal/service"
	"github.com/MKhiriev/go-commerce-edge/internal/utils"
	"github.com/MKhiriev/go-commerce-edge/internal/webhook"
)

type Handler struct {
	services *service.Services
	adapters *adapter.Adapters

	cfg      config.StructuredConfig
	verifier *webhook.Verifier
	metrics  *metrics.Prometheus
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, adapters *adapter.Adapters, cfg config.StructuredConfig, metrics *metrics.Prometheus, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		adapters: adapters,
		cfg:      cfg,
		verifier: webhook.NewVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance),
		metrics:  metrics,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
