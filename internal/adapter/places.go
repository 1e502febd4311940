package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/utils"
	"github.com/MKhiriev/go-commerce-edge/models"
)

const (
	placesAutocompleteTypes = "address"
	placesDetailsFields     = "address_components,formatted_address"
)

type placesAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewPlacesAdapter returns a [PlacesAdapter] using cfg.APIKey. The key never
// leaves the server except towards the places API.
func NewPlacesAdapter(cfg config.Places, timeout time.Duration, logger *logger.Logger) PlacesAdapter {
	return &placesAdapter{
		client: utils.NewHTTPClient(cfg.BaseURL, timeout),
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Autocomplete implements [PlacesAdapter].
func (p *placesAdapter) Autocomplete(ctx context.Context, input, sessionToken string) (models.UpstreamResponse, error) {
	query := map[string]string{
		"input": input,
		"types": placesAutocompleteTypes,
	}
	return p.get(ctx, "/autocomplete/json", query, sessionToken)
}

// Details implements [PlacesAdapter].
func (p *placesAdapter) Details(ctx context.Context, placeID, sessionToken string) (models.UpstreamResponse, error) {
	query := map[string]string{
		"place_id": placeID,
		"fields":   placesDetailsFields,
	}
	return p.get(ctx, "/details/json", query, sessionToken)
}

func (p *placesAdapter) get(ctx context.Context, path string, query map[string]string, sessionToken string) (models.UpstreamResponse, error) {
	if p.apiKey == "" {
		return models.UpstreamResponse{}, ErrNotConfigured
	}

	query["key"] = p.apiKey
	if sessionToken != "" {
		query["sessiontoken"] = sessionToken
	}

	p.logger.Debug().Str("path", path).Msg("places lookup")

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("places request %s: %w", path, err)
	}

	return models.UpstreamResponse{
		Status: resp.StatusCode(),
		Header: resp.Header().Clone(),
		Body:   resp.Body(),
	}, nil
}
