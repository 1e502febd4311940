package models

// ErrorResponse is the body of every error produced by the dispatcher.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WebhookAck is returned once a webhook has been verified, whether or not the
// event led to any upstream action.
type WebhookAck struct {
	Received bool `json:"received"`
}

// CheckoutRedirect carries the hosted payment page URL of a new checkout
// session.
type CheckoutRedirect struct {
	URL string `json:"url"`
}
