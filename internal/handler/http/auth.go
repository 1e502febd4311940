package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/MKhiriev/go-commerce-edge/internal/dispatch"
)

const jsonContentType = "application/json"

var authTokenCookie = regexp.MustCompile(`auth_token=([^;]+)`)

func (h *Handler) login(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	return h.forward(r, c, "/auth/login")
}

func (h *Handler) logout(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	return h.forward(r, c, "/auth/logout")
}

// authCallback verifies the one-time code upstream and copies the session
// token, which the backend only sets as a cookie, into the JSON body as
// "token".
func (h *Handler) authCallback(r *http.Request, c *dispatch.Context) (*dispatch.Response, error) {
	resp, err := h.callUpstream(r, c, "/auth/callback")
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return dispatch.Raw(resp.Status, jsonContentType, resp.Body), nil
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err != nil || body == nil {
		return nil, fmt.Errorf("auth callback: %w", ErrUpstreamBodyNotObject)
	}

	body["token"] = json.RawMessage("null")
	if token, ok := tokenFromCookies(resp.Header.Values("Set-Cookie")); ok {
		encoded, err := json.Marshal(token)
		if err != nil {
			return nil, err
		}
		body["token"] = encoded
	}

	return dispatch.JSON(resp.Status, body)
}

func (h *Handler) unknownAuthAction(_ *http.Request, _ *dispatch.Context) (*dispatch.Response, error) {
	return nil, dispatch.Fail(http.StatusNotFound, msgNotFound)
}

func tokenFromCookies(cookies []string) (string, bool) {
	for _, cookie := range cookies {
		if m := authTokenCookie.FindStringSubmatch(cookie); m != nil {
			return m[1], true
		}
	}
	return "", false
}
