package service

import "errors"

var (
	ErrInvalidCheckout  = errors.New("invalid checkout request")
	ErrInvalidMetadata  = errors.New("invalid checkout session metadata")
	ErrOrderNotCreated  = errors.New("order was not created")
	ErrMissingSessionID = errors.New("missing checkout session id")
)

// GatewayError wraps a payment gateway failure. Its message is the gateway's
// own message.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
