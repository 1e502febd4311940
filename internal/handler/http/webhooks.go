// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/metrics"
	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/rs/zerolog"
)

const stripeSignatureHeader = "Stripe-Signature"

// stripeWebhook verifies a payment gateway delivery and, for a paid checkout,
// creates the order upstream with the route's credential.
//
// Once the signature is verified the delivery is always acknowledged. A
// failed order creation is logged and counted but never reported back, so the
// gateway does not redeliver an event whose order may already exist.
func (h *Handler) stripeWebhook(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	log := logger.FromRequest(r)

	signature := r.Header.Get(stripeSignatureHeader)
	if signature == "" {
		h.metrics.ObserveWebhook(metrics.WebhookRejected)
		return nil, dispatch.Fail(http.StatusBadRequest, msgMissingSignature)
	}

	if h.verifier.Secret == "" {
		h.metrics.ObserveWebhook(metrics.WebhookUnconfigured)
		log.Error().Msg("webhook received but no signing secret is configured")
		return nil, dispatch.Fail(http.StatusServiceUnavailable, msgWebhookNotConfigured)
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingRequestBody, err)
	}

	event, err := h.verifier.Verify(payload, signature)
	if err != nil {
		h.metrics.ObserveWebhook(metrics.WebhookRejected)
		log.Warn().Err(err).Msg("webhook signature rejected")
		return nil, dispatch.Fail(http.StatusBadRequest, err.Error())
	}

	log = log.GetChildLogger()
	log.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("event_id", event.ID).Str("event_type", event.Type)
	})

	credential, _ := c.Credential(r)
	handled, err := h.services.FulfillmentService.HandleEvent(log.WithContext(r.Context()), event, credential)
	switch {
	case err != nil:
		h.metrics.ObserveWebhook(metrics.WebhookOrderNotSaved)
		log.Err(err).Msg("order creation from webhook failed")
	case handled:
		h.metrics.ObserveWebhook(metrics.WebhookOrderCreated)
		log.Info().Msg("order created from webhook")
	default:
		h.metrics.ObserveWebhook(metrics.WebhookIgnored)
		log.Debug().Msg("webhook event ignored")
	}

	return dispatch.JSON(http.StatusOK, models.WebhookAck{Received: true})
}
