package models

import "encoding/json"

// OrderPayload is the body sent to the commerce backend to create an order.
type OrderPayload struct {
	Customer json.RawMessage `json:"customer"`
	Shipping json.RawMessage `json:"shipping"`
	Items    []OrderItem     `json:"items"`
}

// OrderItem is a single order line in the commerce backend's format.
type OrderItem struct {
	SKU      string          `json:"sku"`
	URLKey   string          `json:"urlKey"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    OrderItemPrice  `json:"price"`
	Custom   OrderItemCustom `json:"custom"`
}

// OrderItemPrice carries the final unit price as a decimal string.
type OrderItemPrice struct {
	Currency string `json:"currency"`
	Final    string `json:"final"`
}

// OrderItemCustom holds storefront-only attributes of an order line.
type OrderItemCustom struct {
	Image string `json:"image"`
	URL   string `json:"url"`
}
