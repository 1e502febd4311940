package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/validators"
	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/tidwall/gjson"
)

const (
	freeShippingThreshold = 150
	shippingCostCents     = 1000
	freeShippingLabel     = "Standard Shipping (Free)"
	paidShippingLabel     = "Standard Shipping"
	defaultCurrency       = "USD"

	// placeholder substituted by the payment gateway on redirect
	sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
)

// mediaFilePattern extracts the media_<hash>.<ext> file name from an image
// URL. Only the file name is kept in session metadata.
var mediaFilePattern = regexp.MustCompile(`media_[a-f0-9]+\.\w+`)

type checkoutService struct {
	payment   adapter.PaymentAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewCheckoutService returns a CheckoutService backed by payment.
func NewCheckoutService(payment adapter.PaymentAdapter, logger *logger.Logger) CheckoutService {
	return &checkoutService{
		payment:   payment,
		validator: validators.NewCheckoutValidator(),
		logger:    logger,
	}
}

func (s *checkoutService) CreateSession(ctx context.Context, req models.CheckoutRequest, clientOrigin string) (models.CheckoutRedirect, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CheckoutRedirect{}, fmt.Errorf("%w: %w", ErrInvalidCheckout, err)
	}

	params, err := BuildCheckoutParams(req, clientOrigin)
	if err != nil {
		return models.CheckoutRedirect{}, err
	}

	session, err := s.payment.CreateCheckoutSession(ctx, params)
	if err != nil {
		return models.CheckoutRedirect{}, &GatewayError{Err: err}
	}

	logger.FromContext(ctx).Info().Str("session_id", session.ID).Int("items", len(req.Items)).Msg("checkout session created")

	return models.CheckoutRedirect{URL: session.URL}, nil
}

func (s *checkoutService) GetSession(ctx context.Context, id string) (models.CheckoutSessionSummary, error) {
	if id == "" {
		return models.CheckoutSessionSummary{}, ErrMissingSessionID
	}

	session, err := s.payment.GetCheckoutSession(ctx, id)
	if err != nil {
		return models.CheckoutSessionSummary{}, fmt.Errorf("error getting checkout session: %w", err)
	}

	return session.Summary(), nil
}

// ShippingCents prices shipping for a cart: free from a subtotal of 150 in
// the cart currency, a flat 1000 cents below that.
func ShippingCents(items []models.CartItem) int64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	if subtotal >= freeShippingThreshold {
		return 0
	}
	return shippingCostCents
}

// BuildCheckoutParams encodes req as payment gateway form parameters. The
// cart is also stored in session metadata so the order can be rebuilt when
// the payment completes. An empty cart is rejected with ErrInvalidCheckout.
func BuildCheckoutParams(req models.CheckoutRequest, clientOrigin string) (url.Values, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: cart has no items", ErrInvalidCheckout)
	}

	params := url.Values{}
	set := params.Set

	set("mode", "payment")
	set("customer_email", gjson.GetBytes(req.Customer, "email").String())
	set("success_url", clientOrigin+"/order-confirmation?session_id="+sessionIDPlaceholder)
	set("cancel_url", clientOrigin+"/cart")

	for i, item := range req.Items {
		prefix := "line_items[" + strconv.Itoa(i) + "]"
		set(prefix+"[price_data][currency]", currencyOrDefault(item.Currency))
		set(prefix+"[price_data][unit_amount]", strconv.FormatInt(toCents(item.Price), 10))
		set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Image != "" && !strings.Contains(item.Image, "localhost") {
			set(prefix+"[price_data][product_data][images][0]", item.Image)
		}
		set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
	}

	shipping := ShippingCents(req.Items)
	label := paidShippingLabel
	if shipping == 0 {
		label = freeShippingLabel
	}
	set("shipping_options[0][shipping_rate_data][type]", "fixed_amount")
	set("shipping_options[0][shipping_rate_data][display_name]", label)
	set("shipping_options[0][shipping_rate_data][fixed_amount][amount]", strconv.FormatInt(shipping, 10))
	set("shipping_options[0][shipping_rate_data][fixed_amount][currency]", currencyOrDefault(req.Items[0].Currency))

	customer, err := compactJSON(req.Customer)
	if err != nil {
		return nil, fmt.Errorf("%w: customer: %w", ErrInvalidCheckout, err)
	}
	shippingAddr, err := compactJSON(req.Shipping)
	if err != nil {
		return nil, fmt.Errorf("%w: shipping: %w", ErrInvalidCheckout, err)
	}
	items, err := json.Marshal(metadataItems(req.Items))
	if err != nil {
		return nil, fmt.Errorf("error encoding metadata items: %w", err)
	}

	set("metadata[customer]", customer)
	set("metadata[shipping]", shippingAddr)
	set("metadata[items]", string(items))

	return params, nil
}

func metadataItems(items []models.CartItem) []models.MetadataItem {
	out := make([]models.MetadataItem, 0, len(items))
	for _, item := range items {
		entry := models.MetadataItem{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Currency: item.Currency,
			URL:      item.URL,
		}
		if item.Image != "" {
			entry.Image = mediaFilePattern.FindString(item.Image)
		}
		out = append(out, entry)
	}
	return out
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func currencyOrDefault(c string) string {
	if c == "" {
		return defaultCurrency
	}
	return c
}

func compactJSON(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "null", nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
