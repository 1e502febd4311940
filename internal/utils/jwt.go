package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned when an Authorization header is
// not of the form "<scheme> <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// SubjectFromBearer returns the "sub" claim of the JWT carried in an
// Authorization header WITHOUT verifying it.
//
// The result is only suitable for log correlation. It must never be used for
// an authorization decision: the signature belongs to the upstream service
// and is checked there.
func SubjectFromBearer(authorizationHeader string) (string, error) {
	tokenString, err := ParseBearerToken(authorizationHeader)
	if err != nil {
		return "", err
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	return claims.GetSubject()
}
