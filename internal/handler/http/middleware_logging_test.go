package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest puts a logger writing to buf into the request context the same
// way withTraceID does.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject}).
		SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return token
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		target           string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			target:          "/orders/1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/orders/1"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
				`"level":"info"`,
			},
		},
		{
			name:          "preflight 204 no body",
			method:        http.MethodOptions,
			target:        "/checkout",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"OPTIONS"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			target:          "/places/autocomplete?input=main",
			handlerStatus:   http.StatusForbidden,
			handlerResponse: `{"error":"Forbidden"}`,
			checkLogContains: []string{
				`"uri":"/places/autocomplete?input=main"`,
				`"status":403`,
				`"level":"warn"`,
			},
		},
		{
			name:            "server error logged at error level",
			method:          http.MethodPost,
			target:          "/orders",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: `{"error":"Internal server error"}`,
			checkLogContains: []string{
				`"status":500`,
				`"level":"error"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_Subject(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantSubject   string
	}{
		{name: "bearer JWT", authorization: "Bearer " + signedToken(t, "customer-42"), wantSubject: `"subject":"customer-42"`},
		{name: "opaque token", authorization: "Bearer not-a-jwt"},
		{name: "no header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			req := makeRequest(http.MethodGet, "/customers/a@b.c", &logBuf)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantSubject != "" {
				assert.Contains(t, logBuf.String(), tt.wantSubject)
			} else {
				assert.NotContains(t, logBuf.String(), `"subject"`)
			}
			assert.NotContains(t, logBuf.String(), "Bearer")
		})
	}
}

func TestWithLogging_ResponseSizeAccumulates(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"level":"info"`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	})
}
