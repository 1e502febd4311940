package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError turns a non-2xx upstream response into an error. Known
// statuses wrap a sentinel so callers can match them with errors.Is.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := upstreamDetail(resp.Body())

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	if detail == "" {
		detail = http.StatusText(status)
	}

	return fmt.Errorf("http %d: %s", status, detail)
}

// upstreamDetail prefers the "message" or "error" string of a JSON body and
// falls back to the raw text.
func upstreamDetail(body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error"} {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
	}

	return strings.TrimSpace(string(body))
}

// mapPaymentError extracts the gateway's {"error": {...}} object. The gateway
// may report an error with any status, so the body is checked first.
func mapPaymentError(resp *resty.Response) error {
	e := gjson.GetBytes(resp.Body(), "error")
	if e.IsObject() {
		return &PaymentError{
			Status:  resp.StatusCode(),
			Type:    e.Get("type").String(),
			Code:    e.Get("code").String(),
			Message: e.Get("message").String(),
		}
	}

	return mapHTTPError(resp)
}
