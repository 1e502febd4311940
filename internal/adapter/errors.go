package adapter

import "errors"

// Errors returned by the adapters. Backend status codes that have no sentinel
// are reported as "http <code>: <body>".
var (
	ErrNotConfigured       = errors.New("adapter is not configured")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// PaymentError is an error object returned by the payment gateway API.
type PaymentError struct {
	Status  int
	Type    string
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}
