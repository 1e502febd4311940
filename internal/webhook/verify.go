package webhook

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-commerce-edge/internal/utils"
	"github.com/MKhiriev/go-commerce-edge/models"
)

// DefaultTolerance is the maximum distance between the signing time and now.
const DefaultTolerance = 300 * time.Second

// Verifier checks signed deliveries against one signing secret.
type Verifier struct {
	Secret    string
	Tolerance time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewVerifier returns a Verifier for secret. A non-positive tolerance selects
// DefaultTolerance.
func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{Secret: secret, Tolerance: tolerance, Now: time.Now}
}

// Verify checks payload against header using secret and the current time, and
// decodes the event on success.
func Verify(payload []byte, header, secret string, tolerance time.Duration) (models.WebhookEvent, error) {
	return NewVerifier(secret, tolerance).Verify(payload, header)
}

// Verify runs the verification steps in order and returns the first failure.
func (v *Verifier) Verify(payload []byte, header string) (models.WebhookEvent, error) {
	sig, err := ParseSignature(header)
	if err != nil {
		return models.WebhookEvent{}, err
	}

	if err := v.checkTimestamp(sig.Timestamp); err != nil {
		return models.WebhookEvent{}, err
	}

	expected := []byte(computeDigest(payload, sig.Timestamp, v.Secret))
	matched := false
	for _, d := range sig.Digests {
		// every digest is compared so the loop time does not depend on
		// which one matched
		if hmac.Equal(expected, []byte(d)) {
			matched = true
		}
	}
	if !matched {
		return models.WebhookEvent{}, ErrSignatureMismatch
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return event, nil
}

func (v *Verifier) checkTimestamp(ts int64) error {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	tolerance := v.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	// bounds are compared directly; ts may be any int64
	n := now().Unix()
	tol := int64(tolerance / time.Second)
	if ts < n-tol || ts > n+tol {
		return fmt.Errorf("%w: t=%d outside %ds of %d", ErrStaleSignature, ts, tol, n)
	}
	return nil
}

// Sign returns a signature header for payload signed at t.
func Sign(payload []byte, secret string, t time.Time) string {
	ts := t.Unix()
	return Signature{
		Timestamp: ts,
		Digests:   []string{computeDigest(payload, ts, secret)},
	}.String()
}

func computeDigest(payload []byte, ts int64, secret string) string {
	signed := make([]byte, 0, len(payload)+21)
	signed = strconv.AppendInt(signed, ts, 10)
	signed = append(signed, '.')
	signed = append(signed, payload...)
	return utils.HashString(signed, secret)
}
