package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/utils"
	"github.com/MKhiriev/go-commerce-edge/models"
)

// Response headers that describe the backend connection rather than the
// payload. They are not handed back to the caller.
var hopHeaders = []string{
	"Connection",
	"Content-Length",
	"Keep-Alive",
	"Transfer-Encoding",
	"Upgrade",
}

type commerceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewCommerceAdapter returns a [CommerceAdapter] for the backend described by
// cfg.
func NewCommerceAdapter(cfg config.API, logger *logger.Logger) CommerceAdapter {
	return &commerceAdapter{
		client: utils.NewHTTPClient(cfg.BaseURL(), cfg.Timeout),
		logger: logger,
	}
}

// Forward implements [CommerceAdapter]. Content-Type is always
// application/json; the body is attached for POST only.
func (a *commerceAdapter) Forward(ctx context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	r := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if req.Credential != "" {
		r.SetHeader("Authorization", req.Credential)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Method == http.MethodPost && req.Body != nil {
		r.SetBody(req.Body)
	}

	log.Debug().
		Str("method", req.Method).
		Str("upstream_path", req.Path).
		Bool("credential", req.Credential != "").
		Msg("forwarding request upstream")

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("upstream %s %s: %w", req.Method, req.Path, err)
	}

	log.Debug().Int("upstream_status", resp.StatusCode()).Msg("upstream responded")

	header := resp.Header().Clone()
	for _, h := range hopHeaders {
		header.Del(h)
	}

	return models.UpstreamResponse{
		Status: resp.StatusCode(),
		Header: header,
		Body:   resp.Body(),
	}, nil
}

// CreateOrder implements [CommerceAdapter].
func (a *commerceAdapter) CreateOrder(ctx context.Context, order models.OrderPayload, credential string) error {
	r := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order)
	if credential != "" {
		r.SetHeader("Authorization", credential)
	}

	resp, err := r.Post("/orders")
	if err != nil {
		return fmt.Errorf("create order request: %w", err)
	}

	return mapHTTPError(resp)
}
