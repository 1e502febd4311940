package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAPIConfigs indicates that the commerce backend is not fully
	// described (origin, org, site and service token are all required).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStripeConfigs indicates invalid payment gateway settings
	// (for example, a negative webhook tolerance).
	ErrInvalidStripeConfigs = errors.New("invalid stripe configuration")
)
