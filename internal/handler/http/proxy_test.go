package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProxyRoutes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		authorization  string
		wantUpstream   string
		wantCredential string
		wantBody       string
	}{
		{
			name:           "create order with service credential",
			method:         http.MethodPost,
			path:           "/orders",
			body:           `{"items":[]}`,
			wantUpstream:   "/orders",
			wantCredential: testServiceCredential,
			wantBody:       `{"items":[]}`,
		},
		{
			name:           "create order with caller credential",
			method:         http.MethodPost,
			path:           "/orders",
			body:           `{"items":[]}`,
			authorization:  "Bearer user",
			wantUpstream:   "/orders",
			wantCredential: "Bearer user",
			wantBody:       `{"items":[]}`,
		},
		{
			name:           "get order",
			method:         http.MethodGet,
			path:           "/orders/ord-1",
			wantUpstream:   "/orders/ord-1",
			wantCredential: testServiceCredential,
		},
		{
			name:           "customer profile decodes escaped email",
			method:         http.MethodGet,
			path:           "/customers/a%40b.com",
			authorization:  "Bearer user",
			wantUpstream:   "/customers/a@b.com",
			wantCredential: "Bearer user",
		},
		{
			name:           "escaped slash in email is re-escaped upstream",
			method:         http.MethodGet,
			path:           "/customers/a%2Fb@c.com/orders",
			wantUpstream:   "/customers/a%2Fb@c.com/orders",
			wantCredential: testServiceCredential,
		},
		{
			name:           "escaped address id",
			method:         http.MethodDelete,
			path:           "/customers/a%40b.com/addresses/addr%201",
			wantUpstream:   "/customers/a@b.com/addresses/addr%201",
			wantCredential: testServiceCredential,
		},
		{
			name:           "customer profile with trailing slash",
			method:         http.MethodGet,
			path:           "/customers/a@b.com/",
			wantUpstream:   "/customers/a@b.com",
			wantCredential: testServiceCredential,
		},
		{
			name:           "customer orders",
			method:         http.MethodGet,
			path:           "/customers/a@b.com/orders",
			wantUpstream:   "/customers/a@b.com/orders",
			wantCredential: testServiceCredential,
		},
		{
			name:           "list addresses",
			method:         http.MethodGet,
			path:           "/customers/a@b.com/addresses",
			wantUpstream:   "/customers/a@b.com/addresses",
			wantCredential: testServiceCredential,
		},
		{
			name:           "add address forwards body",
			method:         http.MethodPost,
			path:           "/customers/a@b.com/addresses",
			body:           `{"city":"Berlin"}`,
			wantUpstream:   "/customers/a@b.com/addresses",
			wantCredential: testServiceCredential,
			wantBody:       `{"city":"Berlin"}`,
		},
		{
			name:           "get address",
			method:         http.MethodGet,
			path:           "/customers/a@b.com/addresses/addr-1",
			wantUpstream:   "/customers/a@b.com/addresses/addr-1",
			wantCredential: testServiceCredential,
		},
		{
			name:           "delete address drops body",
			method:         http.MethodDelete,
			path:           "/customers/a@b.com/addresses/addr-1",
			body:           `{"ignored":true}`,
			wantUpstream:   "/customers/a@b.com/addresses/addr-1",
			wantCredential: testServiceCredential,
		},
		{
			name:           "empty address id targets collection",
			method:         http.MethodGet,
			path:           "/customers/a@b.com/addresses/",
			wantUpstream:   "/customers/a@b.com/addresses",
			wantCredential: testServiceCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig())

			env.commerce.EXPECT().
				Forward(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
					assert.Equal(t, tt.method, req.Method)
					assert.Equal(t, tt.wantUpstream, req.Path)
					assert.Equal(t, tt.wantCredential, req.Credential)
					if tt.wantBody != "" {
						assert.JSONEq(t, tt.wantBody, string(req.Body))
					} else {
						assert.Empty(t, req.Body)
					}
					return models.UpstreamResponse{
						Status: http.StatusOK,
						Header: http.Header{
							"Content-Type":                []string{"application/json"},
							"X-Upstream":                  []string{"1"},
							"Access-Control-Allow-Origin": []string{"https://evil.example.com"},
						},
						Body: []byte(`{"id":"x"}`),
					}, nil
				})

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := env.do(req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"id":"x"}`, rr.Body.String())
			assert.Equal(t, "1", rr.Header().Get("X-Upstream"))
			assert.Equal(t, []string{testShopOrigin}, rr.Header().Values("Access-Control-Allow-Origin"))
		})
	}
}

func TestProxyRoutes_RejectedLocally(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "unknown customer subroute", method: http.MethodGet, path: "/customers/a@b.com/wishlist", wantStatus: http.StatusNotFound, wantBody: `{"error":"Not found"}`},
		{name: "empty email", method: http.MethodGet, path: "/customers/", wantStatus: http.StatusBadRequest, wantBody: `{"error":"Missing email"}`},
		{name: "empty email on addresses", method: http.MethodGet, path: "/customers//addresses", wantStatus: http.StatusBadRequest, wantBody: `{"error":"Missing email"}`},
		{name: "empty order id", method: http.MethodGet, path: "/orders/", wantStatus: http.StatusNotFound, wantBody: `{"error":"Not found"}`},
		{name: "POST on customer", method: http.MethodPost, path: "/customers/a@b.com", wantStatus: http.StatusNotFound, wantBody: `{"error":"Not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no upstream call is expected: the mock fails the test otherwise
			env := newTestEnv(t, testConfig())

			rr := env.do(httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
