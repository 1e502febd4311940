package adapter

import (
	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
)

// Adapters groups the outbound clients.
type Adapters struct {
	Commerce CommerceAdapter
	Payment  PaymentAdapter
	Places   PlacesAdapter
}

// NewAdapters builds every adapter from cfg. Payment and places adapters are
// always built; they report [ErrNotConfigured] while their keys are empty.
func NewAdapters(cfg config.StructuredConfig, logger *logger.Logger) *Adapters {
	logger.Info().Str("upstream", cfg.API.BaseURL()).Msg("creating adapters...")

	return &Adapters{
		Commerce: NewCommerceAdapter(cfg.API, logger),
		Payment:  NewPaymentAdapter(cfg.Stripe, cfg.API.Timeout, logger),
		Places:   NewPlacesAdapter(cfg.Places, cfg.API.Timeout, logger),
	}
}
