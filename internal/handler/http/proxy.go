package http

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
	"github.com/MKhiriev/go-commerce-edge/models"
)

// maxBodySize caps inbound bodies read for forwarding.
const maxBodySize = 1 << 20

// forward sends the inbound request to path on the commerce backend with the
// credential selected by the route's auth mode, and hands the backend's
// answer back unchanged.
func (h *Handler) forward(r *http.Request, c *dispatch.Context, path string) (*dispatch.Response, error) {
	resp, err := h.callUpstream(r, c, path)
	if err != nil {
		return nil, err
	}

	return &dispatch.Response{
		Status: resp.Status,
		Header: resp.Header,
		Body:   resp.Body,
	}, nil
}

// upstreamPath joins segments into an absolute path, escaping each one so a
// decoded '/' cannot add a segment upstream.
func upstreamPath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func (h *Handler) callUpstream(r *http.Request, c *dispatch.Context, path string) (models.UpstreamResponse, error) {
	req := models.UpstreamRequest{
		Method: r.Method,
		Path:   path,
	}

	if credential, ok := c.Credential(r); ok {
		req.Credential = credential
	}

	if r.Method == http.MethodPost && r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return models.UpstreamResponse{}, fmt.Errorf("%w: %w", ErrReadingRequestBody, err)
		}
		req.Body = body
	}

	return h.adapters.Commerce.Forward(r.Context(), req)
}
