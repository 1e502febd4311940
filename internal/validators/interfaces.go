// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators rejects request payloads before they reach an upstream.
// The checkout validator covers what the payment gateway would otherwise
// accept silently, such as an empty cart or a non-positive quantity.
package validators

import "context"

// Validator checks v and, when fields are given, only those fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
