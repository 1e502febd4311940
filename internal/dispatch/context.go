package dispatch

import (
	"net/http"

	"github.com/MKhiriev/go-commerce-edge/internal/auth"
	"github.com/MKhiriev/go-commerce-edge/internal/router"
)

// Context is the per-request data a handler receives next to the request.
type Context struct {
	// Params holds the path variables captured by the matched pattern.
	Params router.Params

	// Pattern is the pattern the request matched, e.g. "/orders/:orderId".
	Pattern string

	// Mode is the auth mode declared by the matched route.
	Mode auth.Mode

	serviceCredential string
}

// NewContext builds a Context outside of the dispatcher, for handler tests.
func NewContext(params router.Params, mode auth.Mode, serviceCredential string) *Context {
	return &Context{Params: params, Mode: mode, serviceCredential: serviceCredential}
}

// Param returns the path variable bound to name, or "".
func (c *Context) Param(name string) string {
	return c.Params.ByName(name)
}

// Credential resolves the Authorization value to attach to the route's
// outbound call. ok is false when none must be attached.
func (c *Context) Credential(r *http.Request) (credential string, ok bool) {
	return auth.Resolve(c.Mode, r.Header.Get("Authorization"), c.serviceCredential)
}
