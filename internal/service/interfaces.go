// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the parts of the edge dispatcher that do more
// than forward a request: hosted checkout, order fulfilment from payment
// webhooks and build information.
package service

import (
	"context"

	"github.com/MKhiriev/go-commerce-edge/models"
)

// CheckoutService creates and reads hosted checkout sessions.
type CheckoutService interface {
	// CreateSession validates req, prices shipping and opens a checkout
	// session whose success and cancel pages live under clientOrigin.
	CreateSession(ctx context.Context, req models.CheckoutRequest, clientOrigin string) (models.CheckoutRedirect, error)

	// GetSession returns the confirmation page view of session id.
	GetSession(ctx context.Context, id string) (models.CheckoutSessionSummary, error)
}

// FulfillmentService turns verified payment events into backend orders.
type FulfillmentService interface {
	// HandleEvent acts on a verified event. handled is true when an order
	// was submitted. credential authorizes the order creation.
	HandleEvent(ctx context.Context, event models.WebhookEvent, credential string) (handled bool, err error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.BuildInfoResponse
}
