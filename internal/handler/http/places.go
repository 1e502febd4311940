package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
	"github.com/MKhiriev/go-commerce-edge/models"
)

const (
	placesAutocomplete = "autocomplete"
	placesDetails      = "details"
)

// places proxies address autocomplete so that the API key never reaches the
// browser. Only pages served from an allowed origin may use it.
func (h *Handler) places(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	if !h.originAllowed(r) {
		return nil, dispatch.Fail(http.StatusForbidden, msgForbidden)
	}

	if h.cfg.Places.APIKey == "" {
		return nil, dispatch.Fail(http.StatusServiceUnavailable, msgPlacesNotConfigured)
	}

	query := r.URL.Query()
	sessionToken := query.Get("sessiontoken")

	var (
		resp models.UpstreamResponse
		err  error
	)
	switch c.Param("action") {
	case placesAutocomplete:
		input := query.Get("input")
		if input == "" {
			return nil, dispatch.Fail(http.StatusBadRequest, msgMissingInput)
		}
		resp, err = h.adapters.Places.Autocomplete(r.Context(), input, sessionToken)
	case placesDetails:
		placeID := query.Get("place_id")
		if placeID == "" {
			return nil, dispatch.Fail(http.StatusBadRequest, msgMissingPlaceID)
		}
		resp, err = h.adapters.Places.Details(r.Context(), placeID, sessionToken)
	default:
		return nil, dispatch.Fail(http.StatusNotFound, msgNotFound)
	}
	if err != nil {
		return nil, err
	}

	return dispatch.Raw(resp.Status, jsonContentType, resp.Body), nil
}

// originAllowed matches Origin, or Referer when Origin is absent, against the
// configured prefixes.
func (h *Handler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = r.Header.Get("Referer")
	}

	for _, allowed := range h.cfg.Places.AllowedOrigins {
		if allowed != "" && strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}
