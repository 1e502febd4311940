package handler

import (
	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/handler/http"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/metrics"
	"github.com/MKhiriev/go-commerce-edge/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, adapters *adapter.Adapters, cfg config.StructuredConfig, metrics *metrics.Prometheus, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, adapters, cfg, metrics, logger),
	}, nil
}
