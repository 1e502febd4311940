package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/tidwall/gjson"
)

const paymentStatusPaid = "paid"

type fulfillmentService struct {
	commerce adapter.CommerceAdapter

	logger *logger.Logger
}

// NewFulfillmentService returns a FulfillmentService that creates orders
// through commerce.
func NewFulfillmentService(commerce adapter.CommerceAdapter, logger *logger.Logger) FulfillmentService {
	return &fulfillmentService{
		commerce: commerce,
		logger:   logger,
	}
}

// HandleEvent submits an order for a completed and paid checkout session.
// Every other event is ignored.
func (s *fulfillmentService) HandleEvent(ctx context.Context, event models.WebhookEvent, credential string) (bool, error) {
	log := logger.FromContext(ctx)

	if event.Type != models.EventCheckoutSessionCompleted {
		log.Debug().Str("event_type", event.Type).Msg("webhook event ignored")
		return false, nil
	}

	session := gjson.ParseBytes(event.Data.Object)
	if status := session.Get("payment_status").String(); status != paymentStatusPaid {
		log.Info().Str("session_id", session.Get("id").String()).Str("payment_status", status).Msg("checkout completed without payment")
		return false, nil
	}

	order, err := BuildOrderPayload(session.Get("metadata"))
	if err != nil {
		return false, err
	}

	if err = s.commerce.CreateOrder(ctx, order, credential); err != nil {
		return false, fmt.Errorf("%w: %w", ErrOrderNotCreated, err)
	}

	log.Info().Str("session_id", session.Get("id").String()).Int("items", len(order.Items)).Msg("order created from checkout session")
	return true, nil
}

// BuildOrderPayload rebuilds the backend order from checkout session
// metadata written by [BuildCheckoutParams].
func BuildOrderPayload(metadata gjson.Result) (models.OrderPayload, error) {
	customer := metadata.Get("customer").String()
	shipping := metadata.Get("shipping").String()
	if !gjson.Valid(customer) {
		return models.OrderPayload{}, fmt.Errorf("%w: customer is not JSON", ErrInvalidMetadata)
	}
	if !gjson.Valid(shipping) {
		return models.OrderPayload{}, fmt.Errorf("%w: shipping is not JSON", ErrInvalidMetadata)
	}

	var items []models.MetadataItem
	if err := json.Unmarshal([]byte(metadata.Get("items").String()), &items); err != nil {
		return models.OrderPayload{}, fmt.Errorf("%w: items: %w", ErrInvalidMetadata, err)
	}

	order := models.OrderPayload{
		Customer: json.RawMessage(customer),
		Shipping: json.RawMessage(shipping),
		Items:    make([]models.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			SKU:      item.SKU,
			URLKey:   urlKey(item.URL),
			Name:     item.Name,
			Quantity: item.Quantity,
			Price: models.OrderItemPrice{
				Currency: currencyOrDefault(item.Currency),
				Final:    strconv.FormatFloat(item.Price, 'f', -1, 64),
			},
			Custom: models.OrderItemCustom{
				Image: item.Image,
				URL:   item.URL,
			},
		})
	}

	return order, nil
}

// urlKey is the last path segment of a product URL.
func urlKey(u string) string {
	return u[strings.LastIndex(u, "/")+1:]
}
