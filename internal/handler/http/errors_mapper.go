package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
	"github.com/MKhiriev/go-commerce-edge/internal/service"
)

// errorStatusMap lists the service errors whose message is safe to show.
var errorStatusMap = map[error]*dispatch.Failure{
	service.ErrInvalidCheckout:  dispatch.Fail(http.StatusBadRequest, msgInvalidCheckout),
	service.ErrMissingSessionID: dispatch.Fail(http.StatusBadRequest, msgMissingSessionID),
	adapter.ErrNotConfigured:    dispatch.Fail(http.StatusServiceUnavailable, msgPaymentsNotConfigured),
}

// checkoutFailure converts a checkout service error into what the client
// sees. Errors it does not know are returned unchanged and end up as a 500.
func checkoutFailure(err error) error {
	for target, failure := range errorStatusMap {
		if errors.Is(err, target) {
			return failure
		}
	}

	var gatewayErr *service.GatewayError
	if errors.As(err, &gatewayErr) {
		return dispatch.Failf(http.StatusBadGateway, "Stripe error: %s", gatewayErr.Error())
	}

	return err
}
