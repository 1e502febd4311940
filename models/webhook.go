package models

import "encoding/json"

// Webhook event types acted upon by the dispatcher.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// WebhookEvent is a verified payment gateway event. Data.Object is kept raw
// because its shape depends on Type.
type WebhookEvent struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Created  int64            `json:"created"`
	Livemode bool             `json:"livemode"`
	Data     WebhookEventData `json:"data"`
}

// WebhookEventData wraps the object the event is about.
type WebhookEventData struct {
	Object json.RawMessage `json:"object"`
}
