package validators

import (
	"context"

	"github.com/MKhiriev/go-commerce-edge/models"
	"github.com/tidwall/gjson"
)

// Field names accepted by [CheckoutValidator].
const (
	// FieldCustomerEmail requires a truthy "email" member in the customer
	// object.
	FieldCustomerEmail = "customer_email"

	// FieldItems requires at least one cart item.
	FieldItems = "items"

	// FieldItemQuantities requires every item quantity to be positive.
	FieldItemQuantities = "item_quantities"

	// FieldItemPrices requires every item price to be non-negative.
	FieldItemPrices = "item_prices"
)

// CheckoutValidator validates [models.CheckoutRequest] values.
type CheckoutValidator struct {
}

// NewCheckoutValidator returns a CheckoutValidator as a Validator.
func NewCheckoutValidator() Validator {
	return &CheckoutValidator{}
}

// Validate checks a models.CheckoutRequest (value or pointer). With no fields
// only the customer email and the presence of items are checked.
func (v *CheckoutValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CheckoutRequest:
		return v.validateCheckoutRequest(value, fields...)
	case *models.CheckoutRequest:
		return v.validateCheckoutRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CheckoutValidator) validateCheckoutRequest(req models.CheckoutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomerEmail, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldCustomerEmail:
			if !truthy(gjson.GetBytes(req.Customer, "email")) {
				return ErrMissingCustomerEmail
			}
		case FieldItems:
			if len(req.Items) == 0 {
				return ErrEmptyItems
			}
		case FieldItemQuantities:
			for _, item := range req.Items {
				if item.Quantity <= 0 {
					return ErrInvalidQuantity
				}
			}
		case FieldItemPrices:
			for _, item := range req.Items {
				if item.Price < 0 {
					return ErrInvalidPrice
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// truthy reports whether a JSON value would pass a storefront's
// "if (value)" check: present, not null or false, not 0 and not "".
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}
