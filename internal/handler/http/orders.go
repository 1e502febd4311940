package http

import (
	"net/http"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
)

func (h *Handler) createOrder(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	return h.forward(r, c, "/orders")
}

func (h *Handler) getOrder(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	orderID := c.Param("orderId")
	if orderID == "" {
		return nil, dispatch.Fail(http.StatusNotFound, msgNotFound)
	}
	return h.forward(r, c, upstreamPath("orders", orderID))
}
