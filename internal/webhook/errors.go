package webhook

import "errors"

// Verification failures. All of them describe client-supplied input and are
// reported to the sender as 400 Bad Request.
var (
	// ErrMalformedSignature is returned when the signature header lacks a
	// timestamp or a v1 digest, or the timestamp is not an integer.
	ErrMalformedSignature = errors.New("invalid signature header")

	// ErrStaleSignature is returned when the signing time is further from
	// now than the configured tolerance, in either direction.
	ErrStaleSignature = errors.New("webhook timestamp outside tolerance")

	// ErrSignatureMismatch is returned when no supplied digest equals the
	// expected one.
	ErrSignatureMismatch = errors.New("webhook signature verification failed")

	// ErrInvalidPayload is returned when an authentic payload is not a JSON
	// event.
	ErrInvalidPayload = errors.New("invalid webhook payload")
)
