package dispatch

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is what a handler hands back to the dispatcher. A zero Status is
// written as 200.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON marshals v into a Response with Content-Type application/json.
func JSON(status int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return &Response{
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	}, nil
}

// Raw wraps an already encoded body. An empty contentType leaves the header
// unset.
func Raw(status int, contentType string, body []byte) *Response {
	header := make(http.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &Response{Status: status, Header: header, Body: body}
}

func (r *Response) status() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}
