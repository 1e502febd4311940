// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: CORS origin, log level, version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// API describes the commerce backend every proxied route talks to,
	// including the service credential.
	API API `envPrefix:"API_"`

	// Stripe holds the payment gateway keys used by checkout and webhook
	// routes. Optional: those routes answer 503 while it is empty.
	Stripe Stripe `envPrefix:"STRIPE_"`

	// Places holds the address autocomplete settings. Optional: the places
	// route answers 503 while the key is empty.
	Places Places `envPrefix:"GOOGLE_PLACES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// AllowedOrigin is the value of Access-Control-Allow-Origin on every
	// decorated response. Defaults to "*".
	// Env: APP_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// LogLevel is a zerolog level name. Defaults to "info".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on
	// (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request,
	// including its one outbound call.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// API describes the commerce backend.
type API struct {
	// Origin is the scheme and host of the backend (e.g. "https://api.example.com").
	// Env: API_ORIGIN
	Origin string `env:"ORIGIN"`

	// Org and Site select the tenant: requests go to {Origin}/{Org}/sites/{Site}.
	// Env: API_ORG, API_SITE
	Org  string `env:"ORG"`
	Site string `env:"SITE"`

	// Token is the service credential sent as "Bearer <Token>" by routes
	// whose auth mode selects it. Must be kept confidential.
	// Env: API_TOKEN
	Token string `env:"TOKEN"`

	// Timeout bounds every outbound call to the backend.
	// Env: API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Stripe holds the payment gateway settings.
type Stripe struct {
	// SecretKey authenticates calls to the payment gateway REST API.
	// Env: STRIPE_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// WebhookSecret is the endpoint signing secret (whsec_...).
	// Env: STRIPE_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// WebhookTolerance is the accepted distance between a delivery's signing
	// time and now. Defaults to 5m.
	// Env: STRIPE_WEBHOOK_TOLERANCE
	WebhookTolerance time.Duration `env:"WEBHOOK_TOLERANCE"`

	// BaseURL of the REST API. Defaults to https://api.stripe.com/v1.
	// Env: STRIPE_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Places holds the address autocomplete settings.
type Places struct {
	// APIKey is kept server-side and appended to every upstream call.
	// Env: GOOGLE_PLACES_API_KEY
	APIKey string `env:"API_KEY"`

	// AllowedOrigins are the prefixes an Origin (or Referer) header must
	// start with for the places route to answer.
	// Env: GOOGLE_PLACES_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// BaseURL of the places API.
	// Env: GOOGLE_PLACES_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Defaults applied after all sources are merged.
const (
	DefaultAllowedOrigin    = "*"
	DefaultLogLevel         = "info"
	DefaultHTTPAddress      = "0.0.0.0:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultAPITimeout       = 15 * time.Second
	DefaultWebhookTolerance = 300 * time.Second
	DefaultStripeBaseURL    = "https://api.stripe.com/v1"
	DefaultPlacesBaseURL    = "https://maps.googleapis.com/maps/api/place"
)

// BaseURL returns {Origin}/{Org}/sites/{Site}.
func (a API) BaseURL() string {
	return strings.TrimRight(a.Origin, "/") + "/" + a.Org + "/sites/" + a.Site
}

// ServiceCredential returns the Authorization header value for the service
// token.
func (a API) ServiceCredential() string {
	return "Bearer " + a.Token
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.AllowedOrigin == "" {
		cfg.App.AllowedOrigin = DefaultAllowedOrigin
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultAPITimeout
	}
	if cfg.Stripe.WebhookTolerance == 0 {
		cfg.Stripe.WebhookTolerance = DefaultWebhookTolerance
	}
	if cfg.Stripe.BaseURL == "" {
		cfg.Stripe.BaseURL = DefaultStripeBaseURL
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = DefaultPlacesBaseURL
	}
}
