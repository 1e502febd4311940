package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		AllowedOrigin string `json:"allowed_origin"`
		LogLevel      string `json:"log_level"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	API struct {
		Origin  string   `json:"origin"`
		Org     string   `json:"org"`
		Site    string   `json:"site"`
		Token   string   `json:"token"`
		Timeout Duration `json:"timeout"`
	} `json:"api,omitempty"`

	Stripe struct {
		SecretKey        string   `json:"secret_key"`
		WebhookSecret    string   `json:"webhook_secret"`
		WebhookTolerance Duration `json:"webhook_tolerance"`
		BaseURL          string   `json:"base_url"`
	} `json:"stripe,omitempty"`

	Places struct {
		APIKey         string   `json:"api_key"`
		AllowedOrigins []string `json:"allowed_origins"`
		BaseURL        string   `json:"base_url"`
	} `json:"places,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AllowedOrigin: jsonCfg.App.AllowedOrigin,
			LogLevel:      jsonCfg.App.LogLevel,
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		API: API{
			Origin:  jsonCfg.API.Origin,
			Org:     jsonCfg.API.Org,
			Site:    jsonCfg.API.Site,
			Token:   jsonCfg.API.Token,
			Timeout: time.Duration(jsonCfg.API.Timeout),
		},
		Stripe: Stripe{
			SecretKey:        jsonCfg.Stripe.SecretKey,
			WebhookSecret:    jsonCfg.Stripe.WebhookSecret,
			WebhookTolerance: time.Duration(jsonCfg.Stripe.WebhookTolerance),
			BaseURL:          jsonCfg.Stripe.BaseURL,
		},
		Places: Places{
			APIKey:         jsonCfg.Places.APIKey,
			AllowedOrigins: jsonCfg.Places.AllowedOrigins,
			BaseURL:        jsonCfg.Places.BaseURL,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
