// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Client-facing messages of the handlers in this package.
const (
	msgNotFound              = "Not found"
	msgMissingEmail          = "Missing email"
	msgForbidden             = "Forbidden"
	msgInvalidJSON           = "Invalid JSON was passed"
	msgInvalidCheckout       = "Missing customer email or items"
	msgMissingSessionID      = "Missing session id"
	msgMissingSignature      = "Missing signature"
	msgMissingInput          = "Missing input parameter"
	msgMissingPlaceID        = "Missing place_id parameter"
	msgPlacesNotConfigured   = "Places API not configured"
	msgPaymentsNotConfigured = "Payments not configured"
	msgWebhookNotConfigured  = "Webhook not configured"
)

var (
	// ErrUpstreamBodyNotObject is returned when an upstream answer that must
	// be enriched is not a JSON object.
	ErrUpstreamBodyNotObject = errors.New("upstream body is not a JSON object")

	// ErrReadingRequestBody is returned when the inbound body cannot be read.
	ErrReadingRequestBody = errors.New("error reading request body")
)
