// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommerceAdapter(t *testing.T, serverURL string) CommerceAdapter {
	t.Helper()
	cfg := config.API{Origin: serverURL, Org: "org", Site: "site", Token: "svc", Timeout: 5 * time.Second}
	return NewCommerceAdapter(cfg, logger.Nop())
}

// ── Forward ─────────────────────────────────────────────────────────────────

func TestForward_PostWithCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/org/sites/site/orders", r.URL.Path)
		assert.Equal(t, "Bearer user", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"items":[]}`, string(body))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Request-Id", "abc")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"o-1"}`))
	}))
	defer srv.Close()

	a := newTestCommerceAdapter(t, srv.URL)
	resp, err := a.Forward(context.Background(), models.UpstreamRequest{
		Method:     http.MethodPost,
		Path:       "/orders",
		Credential: "Bearer user",
		Body:       []byte(`{"items":[]}`),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.True(t, resp.OK())
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType())
	assert.Equal(t, "abc", resp.Header.Get("X-Request-Id"))
	assert.Empty(t, resp.Header.Get("Content-Length"))
	assert.JSONEq(t, `{"id":"o-1"}`, string(resp.Body))
}

func TestForward_NoCredentialNoBodyForGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, hasAuth := r.Header["Authorization"]
		assert.False(t, hasAuth)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		assert.Equal(t, "a@b.com", r.URL.Query().Get("email"))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestCommerceAdapter(t, srv.URL)
	resp, err := a.Forward(context.Background(), models.UpstreamRequest{
		Method: http.MethodGet,
		Path:   "/orders/1",
		Query:  url.Values{"email": []string{"a@b.com"}},
		Body:   []byte(`{"ignored":true}`),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestForward_KeepsEscapedPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/org/sites/site/customers/a%40b.com/orders", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestCommerceAdapter(t, srv.URL)
	_, err := a.Forward(context.Background(), models.UpstreamRequest{
		Method: http.MethodGet,
		Path:   "/customers/a%40b.com/orders",
	})
	require.NoError(t, err)
}

func TestForward_ErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	a := newTestCommerceAdapter(t, srv.URL)
	resp, err := a.Forward(context.Background(), models.UpstreamRequest{Method: http.MethodGet, Path: "/customers/x"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.False(t, resp.OK())
	assert.JSONEq(t, `{"message":"invalid token"}`, string(resp.Body))
}

func TestForward_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srvURL := srv.URL
	srv.Close()

	a := newTestCommerceAdapter(t, srvURL)
	_, err := a.Forward(context.Background(), models.UpstreamRequest{Method: http.MethodGet, Path: "/orders/1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream GET /orders/1")
}

func TestForward_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestCommerceAdapter(t, srv.URL)
	_, err := a.Forward(ctx, models.UpstreamRequest{Method: http.MethodGet, Path: "/orders/1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// ── CreateOrder ─────────────────────────────────────────────────────────────

func TestCreateOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/org/sites/site/orders", r.URL.Path)
		assert.Equal(t, "Bearer svc", r.Header.Get("Authorization"))

		var got models.OrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Len(t, got.Items, 1)
		assert.Equal(t, "SKU-1", got.Items[0].SKU)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestCommerceAdapter(t, srv.URL)
	err := a.CreateOrder(context.Background(), models.OrderPayload{
		Customer: json.RawMessage(`{"email":"a@b.com"}`),
		Shipping: json.RawMessage(`null`),
		Items:    []models.OrderItem{{SKU: "SKU-1", Quantity: 1}},
	}, "Bearer svc")

	require.NoError(t, err)
}

func TestCreateOrder_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: "invalid items", wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "token expired", wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "unmapped with body", status: http.StatusTeapot, body: "short and stout", wantMsg: "http 418: short and stout"},
		{name: "unmapped without body", status: http.StatusServiceUnavailable, wantMsg: "http 503: Service Unavailable"},
		{name: "json message", status: http.StatusConflict, body: `{"message":"order exists"}`, wantErr: ErrConflict, wantMsg: "conflict: order exists"},
		{name: "json error string", status: http.StatusTeapot, body: `{"error":"brewing"}`, wantMsg: "http 418: brewing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestCommerceAdapter(t, srv.URL)
			err := a.CreateOrder(context.Background(), models.OrderPayload{}, "Bearer svc")

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
			if tt.body != "" && tt.wantMsg == "" {
				assert.Contains(t, err.Error(), tt.body)
			}
		})
	}
}
