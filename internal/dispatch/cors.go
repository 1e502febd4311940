package dispatch

import (
	"net/http"
	"strings"
)

// WebhookPrefix marks server-to-server paths. Requests under it get no CORS
// headers and no preflight handling.
const WebhookPrefix = "/webhooks/"

const (
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

func isWebhook(path string) bool {
	return strings.HasPrefix(path, WebhookPrefix)
}

// decorate sets the three CORS headers, replacing any value a handler or
// upstream left there.
func (d *Dispatcher) decorate(h http.Header) {
	h.Set("Access-Control-Allow-Origin", d.allowedOrigin)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
}
