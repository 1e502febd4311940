package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/models"
)

func (h *Handler) createCheckout(r *http.Request, _ *dispatch.Context) (*dispatch.Response, error) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid checkout body")
		return nil, dispatch.Fail(http.StatusBadRequest, msgInvalidJSON)
	}

	redirect, err := h.services.CheckoutService.CreateSession(r.Context(), req, clientOrigin(r))
	if err != nil {
		return nil, checkoutFailure(err)
	}

	return dispatch.JSON(http.StatusOK, redirect)
}

func (h *Handler) getCheckoutSession(r *http.Request, _ *dispatch.Context) (*dispatch.Response, error) {
	summary, err := h.services.CheckoutService.GetSession(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		return nil, checkoutFailure(err)
	}

	return dispatch.JSON(http.StatusOK, summary)
}

// clientOrigin is where the hosted payment page sends the customer back to:
// the Origin header, else the origin of the Referer, else the origin the
// request was addressed to.
func clientOrigin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}

	if referer, err := url.Parse(r.Header.Get("Referer")); err == nil && referer.Scheme != "" && referer.Host != "" {
		return referer.Scheme + "://" + referer.Host
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
