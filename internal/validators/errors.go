package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingCustomerEmail = errors.New("customer email is required")
	ErrEmptyItems           = errors.New("items list cannot be empty")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrInvalidPrice         = errors.New("item price cannot be negative")
)
