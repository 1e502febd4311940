package webhook

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	timestampKey = "t"
	schemeV1     = "v1"
)

// Signature is a parsed signature header.
type Signature struct {
	Timestamp int64
	Digests   []string
}

// ParseSignature splits a signature header into its timestamp and v1 digests.
// Items without '=' and unknown schemes are ignored.
func ParseSignature(header string) (Signature, error) {
	var (
		sig   Signature
		rawTS string
	)

	for _, item := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case timestampKey:
			rawTS = value
		case schemeV1:
			if value != "" {
				sig.Digests = append(sig.Digests, value)
			}
		}
	}

	if rawTS == "" || len(sig.Digests) == 0 {
		return Signature{}, ErrMalformedSignature
	}

	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: timestamp %q", ErrMalformedSignature, rawTS)
	}
	sig.Timestamp = ts

	return sig, nil
}

// String renders the header form of the signature.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(timestampKey + "=" + strconv.FormatInt(s.Timestamp, 10))
	for _, d := range s.Digests {
		b.WriteString("," + schemeV1 + "=" + d)
	}
	return b.String()
}
