// Package auth decides which credential, if any, accompanies a call that
// leaves the trust boundary.
//
// Each route declares a [Mode]. [Resolve] combines that mode with the
// caller's credential and the service credential. It only looks at whether a
// credential is present and never checks whether it is valid.
package auth

import (
	"fmt"
	"strings"
)

// Mode is the trust policy a route declares for its outbound call.
type Mode uint8

const (
	// ModeService always forwards the service credential.
	ModeService Mode = iota + 1
	// ModeCaller forwards the caller's credential and never substitutes it.
	ModeCaller
	// ModePublic forwards no credential.
	ModePublic
	// ModePreferred forwards the caller's credential when present and the
	// service credential otherwise.
	ModePreferred
)

var modeNames = map[Mode]string{
	ModeService:   "service",
	ModeCaller:    "caller",
	ModePublic:    "public",
	ModePreferred: "preferred",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == needle {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
