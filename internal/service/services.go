package service

import (
	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/models"
)

type Services struct {
	CheckoutService    CheckoutService
	FulfillmentService FulfillmentService
	AppInfoService     AppInfoService
}

func NewServices(adapters *adapter.Adapters, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		CheckoutService:    NewCheckoutService(adapters.Payment, logger),
		FulfillmentService: NewFulfillmentService(adapters.Commerce, logger),
		AppInfoService:     NewAppInfoService(buildInfo, cfg.App, logger),
	}
}
