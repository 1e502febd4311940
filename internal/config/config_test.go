// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func validAPI() API {
	return API{Origin: "https://api.example.com", Org: "org", Site: "site", Token: "svc"}
}

// ── env ───────────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ALLOWED_ORIGIN": "https://shop.example.com",
		"APP_LOG_LEVEL":      "debug",
		"APP_VERSION":        "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"API_ORIGIN":  "https://api.example.com",
		"API_ORG":     "testorg",
		"API_SITE":    "testsite",
		"API_TOKEN":   "test-service-token",
		"API_TIMEOUT": "10s",

		"STRIPE_SECRET_KEY":        "sk_test",
		"STRIPE_WEBHOOK_SECRET":    "whsec_test",
		"STRIPE_WEBHOOK_TOLERANCE": "2m",

		"GOOGLE_PLACES_API_KEY":         "places-key",
		"GOOGLE_PLACES_ALLOWED_ORIGINS": "https://a.example.com,http://localhost:3000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://shop.example.com", cfg.App.AllowedOrigin)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://api.example.com", cfg.API.Origin)
	assert.Equal(t, "testorg", cfg.API.Org)
	assert.Equal(t, "testsite", cfg.API.Site)
	assert.Equal(t, "test-service-token", cfg.API.Token)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "sk_test", cfg.Stripe.SecretKey)
	assert.Equal(t, "whsec_test", cfg.Stripe.WebhookSecret)
	assert.Equal(t, 2*time.Minute, cfg.Stripe.WebhookTolerance)
	assert.Equal(t, "places-key", cfg.Places.APIKey)
	assert.Equal(t, []string{"https://a.example.com", "http://localhost:3000"}, cfg.Places.AllowedOrigins)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnvFrom_ExplicitEnvironment(t *testing.T) {
	var cfg StructuredConfig
	err := parseEnvFrom(&cfg, map[string]string{
		"API_ORIGIN":             "https://api.example.com",
		"SERVER_REQUEST_TIMEOUT": "3s",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.Origin)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnvFrom_ReportsEveryField(t *testing.T) {
	err := parseEnvFrom(&StructuredConfig{}, map[string]string{
		"SERVER_REQUEST_TIMEOUT":   "soon",
		"STRIPE_WEBHOOK_TOLERANCE": "later",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RequestTimeout")
	assert.Contains(t, err.Error(), "WebhookTolerance")
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-config", "/etc/edge.json",
		"-api-origin", "https://flags.example.com",
		"-api-token", "flag-token",
		"-webhook-tolerance", "1m",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/edge.json", cfg.JSONFilePath)
	assert.Equal(t, "https://flags.example.com", cfg.API.Origin)
	assert.Equal(t, "flag-token", cfg.API.Token)
	assert.Equal(t, time.Minute, cfg.Stripe.WebhookTolerance)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "10.0.0.1:80", want: NetAddress{Host: "10.0.0.1", Port: 80}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
			assert.Equal(t, tt.input, a.String())
		})
	}

	assert.Equal(t, "", (&NetAddress{}).String())
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {"allowed_origin": "https://shop.example.com"},
		"server": {"http_address": "localhost:8081", "request_timeout": "45s"},
		"api": {"origin": "https://json.example.com", "org": "o", "site": "s", "token": "t", "timeout": 1000000000},
		"stripe": {"webhook_secret": "whsec_json", "webhook_tolerance": "10m"},
		"places": {"api_key": "k", "allowed_origins": ["https://a.example.com"]}
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", cfg.App.AllowedOrigin)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://json.example.com", cfg.API.Origin)
	assert.Equal(t, time.Second, cfg.API.Timeout)
	assert.Equal(t, "whsec_json", cfg.Stripe.WebhookSecret)
	assert.Equal(t, 10*time.Minute, cfg.Stripe.WebhookTolerance)
	assert.Equal(t, []string{"https://a.example.com"}, cfg.Places.AllowedOrigins)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "error reading a json file")

	_, err = parseJSON(writeJSONFile(t, `{"server": {"request_timeout": "forever"}}`))
	assert.ErrorContains(t, err, "error decoding json configs")

	_, err = parseJSON(writeJSONFile(t, `{"server": {"request_timeout": true}}`))
	assert.ErrorContains(t, err, "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: validAPI(), App: App{AllowedOrigin: "https://env.example.com"}},
		&StructuredConfig{App: App{AllowedOrigin: "https://flag.example.com"}},
		&StructuredConfig{API: API{Token: "json-token"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.App.AllowedOrigin)
	assert.Equal(t, "json-token", cfg.API.Token)
	assert.Equal(t, "org", cfg.API.Org, "zero values do not override")
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{API: validAPI()})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultAllowedOrigin, cfg.App.AllowedOrigin)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, DefaultWebhookTolerance, cfg.Stripe.WebhookTolerance)
	assert.Equal(t, DefaultStripeBaseURL, cfg.Stripe.BaseURL)
	assert.Equal(t, DefaultPlacesBaseURL, cfg.Places.BaseURL)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "missing api", cfg: StructuredConfig{}, wantErr: ErrInvalidAPIConfigs},
		{name: "missing token", cfg: StructuredConfig{API: API{Origin: "https://a", Org: "o", Site: "s"}}, wantErr: ErrInvalidAPIConfigs},
		{name: "origin without scheme", cfg: StructuredConfig{API: API{Origin: "api.example.com", Org: "o", Site: "s", Token: "t"}}, wantErr: ErrInvalidAPIConfigs},
		{name: "negative timeout", cfg: StructuredConfig{API: validAPI(), Server: Server{RequestTimeout: -time.Second}}, wantErr: ErrInvalidServerConfigs},
		{name: "negative tolerance", cfg: StructuredConfig{API: validAPI(), Stripe: Stripe{WebhookTolerance: -time.Second}}, wantErr: ErrInvalidStripeConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	jsonPath := writeJSONFile(t, `{"api": {"site": "json-site"}}`)
	setEnvVars(t, map[string]string{
		"API_ORIGIN": "https://api.example.com",
		"API_ORG":    "env-org",
		"API_SITE":   "env-site",
		"API_TOKEN":  "env-token",
		"CONFIG":     jsonPath,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-api-org", "flag-org"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-org", cfg.API.Org)
	assert.Equal(t, "json-site", cfg.API.Site)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, "https://api.example.com/flag-org/sites/json-site", cfg.API.BaseURL())
	assert.Equal(t, "Bearer env-token", cfg.API.ServiceCredential())
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", filepath.Join(t.TempDir(), "nope.json")}).
		withJSON().
		build()

	assert.ErrorContains(t, err, "error reading a json file")
}
