package http

import (
	"net/http"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
)

const customerOrdersSubroute = "orders"

// getCustomer serves the profile and, through the subroute variable, the
// customer's orders.
func (h *Handler) getCustomer(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	email := c.Param("email")
	if email == "" {
		return nil, dispatch.Fail(http.StatusBadRequest, msgMissingEmail)
	}

	switch c.Param("subroute") {
	case "":
		return h.forward(r, c, upstreamPath("customers", email))
	case customerOrdersSubroute:
		return h.forward(r, c, upstreamPath("customers", email, customerOrdersSubroute))
	default:
		return nil, dispatch.Fail(http.StatusNotFound, msgNotFound)
	}
}

// customerAddresses proxies address CRUD. Without an address id the request
// goes to the collection.
func (h *Handler) customerAddresses(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	email := c.Param("email")
	if email == "" {
		return nil, dispatch.Fail(http.StatusBadRequest, msgMissingEmail)
	}

	segments := []string{"customers", email, "addresses"}
	if id := c.Param("addressId"); id != "" {
		segments = append(segments, id)
	}
	return h.forward(r, c, upstreamPath(segments...))
}
