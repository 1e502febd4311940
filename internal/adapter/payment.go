package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/utils"
	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/go-resty/resty/v2"
)

type paymentAdapter struct {
	client    *utils.HTTPClient
	secretKey string

	logger *logger.Logger
}

// NewPaymentAdapter returns a [PaymentAdapter] authenticated with
// cfg.SecretKey. Without a key every call fails with [ErrNotConfigured].
func NewPaymentAdapter(cfg config.Stripe, timeout time.Duration, logger *logger.Logger) PaymentAdapter {
	return &paymentAdapter{
		client:    utils.NewHTTPClient(cfg.BaseURL, timeout),
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

// CreateCheckoutSession implements [PaymentAdapter].
func (p *paymentAdapter) CreateCheckoutSession(ctx context.Context, params url.Values) (models.CheckoutSession, error) {
	if p.secretKey == "" {
		return models.CheckoutSession{}, ErrNotConfigured
	}

	p.logger.Debug().Int("params", len(params)).Msg("creating checkout session")

	resp, err := p.request(ctx).
		SetFormDataFromValues(params).
		Post("/checkout/sessions")
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("create checkout session request: %w", err)
	}

	return decodeSession(resp)
}

// GetCheckoutSession implements [PaymentAdapter].
func (p *paymentAdapter) GetCheckoutSession(ctx context.Context, id string) (models.CheckoutSession, error) {
	if p.secretKey == "" {
		return models.CheckoutSession{}, ErrNotConfigured
	}

	resp, err := p.request(ctx).
		SetPathParam("id", id).
		Get("/checkout/sessions/{id}")
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("get checkout session request: %w", err)
	}

	return decodeSession(resp)
}

func (p *paymentAdapter) request(ctx context.Context) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetAuthToken(p.secretKey)
}

func decodeSession(resp *resty.Response) (models.CheckoutSession, error) {
	if err := mapPaymentError(resp); err != nil {
		return models.CheckoutSession{}, err
	}

	var session models.CheckoutSession
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return models.CheckoutSession{}, fmt.Errorf("decode checkout session: %w", err)
	}

	return session, nil
}
