package models

import "encoding/json"

// CheckoutRequest is the body of POST /checkout.
//
// Customer and Shipping are kept as raw JSON: they are stored verbatim in the
// payment session metadata and replayed into the order once payment succeeds.
type CheckoutRequest struct {
	Customer json.RawMessage `json:"customer"`
	Shipping json.RawMessage `json:"shipping"`
	Items    []CartItem      `json:"items"`
}

// CartItem is a single cart line as sent by the storefront.
type CartItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	Image    string  `json:"image,omitempty"`
	URL      string  `json:"url,omitempty"`
}

// MetadataItem is the compact form of a cart line stored in session
// metadata. Image holds only the media file name to stay within the payment
// gateway's per-value size limit.
type MetadataItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	URL      string  `json:"url,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// CheckoutSession is the subset of a payment gateway checkout session the
// dispatcher reads.
type CheckoutSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerDetails *CustomerDetails  `json:"customer_details,omitempty"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	Metadata        map[string]string `json:"metadata"`
}

// CustomerDetails holds what the customer entered on the hosted page.
type CustomerDetails struct {
	Email string `json:"email"`
}

// CheckoutSessionSummary is returned by GET /checkout/session for the order
// confirmation page.
type CheckoutSessionSummary struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	CustomerEmail string            `json:"customer_email"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// Summary reduces a session to its confirmation page view. The email entered
// on the hosted page takes precedence over the one the session was created
// with.
func (s CheckoutSession) Summary() CheckoutSessionSummary {
	email := s.CustomerEmail
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		email = s.CustomerDetails.Email
	}
	return CheckoutSessionSummary{
		ID:            s.ID,
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
		CustomerEmail: email,
		AmountTotal:   s.AmountTotal,
		Currency:      s.Currency,
		Metadata:      s.Metadata,
	}
}
