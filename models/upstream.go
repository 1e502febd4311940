package models

import (
	"net/http"
	"net/url"
)

// UpstreamRequest describes one call to the commerce backend.
type UpstreamRequest struct {
	// Method is the HTTP method of the inbound request.
	Method string
	// Path is relative to the backend base URL and already escaped.
	Path string
	// Query is appended to Path when non-empty.
	Query url.Values
	// Credential is sent as the Authorization header. Empty sends none.
	Credential string
	// Body is forwarded only for POST.
	Body []byte
}

// UpstreamResponse is a fully read backend response.
type UpstreamResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports a 2xx status.
func (r UpstreamResponse) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

// ContentType returns the Content-Type header, or "".
func (r UpstreamResponse) ContentType() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Content-Type")
}
