// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of the edge dispatcher.
//
// Each upstream gets its own adapter built on [utils.HTTPClient] (resty):
// the commerce backend ([CommerceAdapter]), the payment gateway
// ([PaymentAdapter]) and the address autocomplete service ([PlacesAdapter]).
// No adapter retries: one inbound request causes at most one outbound call,
// and its outcome is reported as is.
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-commerce-edge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CommerceAdapter talks to the commerce backend under
// {origin}/{org}/sites/{site}.
type CommerceAdapter interface {
	// Forward performs req and returns the backend response whatever its
	// status. An error means no response was received.
	Forward(ctx context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error)

	// CreateOrder posts order to /orders with credential. A non-2xx status is
	// returned as an error carrying the response body.
	CreateOrder(ctx context.Context, order models.OrderPayload, credential string) error
}

// PaymentAdapter talks to the payment gateway REST API.
type PaymentAdapter interface {
	// CreateCheckoutSession creates a hosted checkout session from
	// form-encoded params. Gateway errors are returned as [*PaymentError].
	CreateCheckoutSession(ctx context.Context, params url.Values) (models.CheckoutSession, error)

	// GetCheckoutSession retrieves a checkout session by id.
	GetCheckoutSession(ctx context.Context, id string) (models.CheckoutSession, error)
}

// PlacesAdapter talks to the address autocomplete API. Responses are passed
// back unparsed.
type PlacesAdapter interface {
	// Autocomplete looks up address predictions for input. sessionToken is
	// optional.
	Autocomplete(ctx context.Context, input, sessionToken string) (models.UpstreamResponse, error)

	// Details resolves placeID into address components. sessionToken is
	// optional.
	Details(ctx context.Context, placeID, sessionToken string) (models.UpstreamResponse, error)
}
