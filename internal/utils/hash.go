package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded (lower case).
//
// A new HMAC instance is created on each call; callers that verify a signature
// must compare the result with [hmac.Equal], never with ==.
//
// Example usage:
//
//	signature := utils.HashString([]byte("1700000000.{}"), "whsec_...")
func HashString(data []byte, hashKey string) string {
	return hex.EncodeToString(Hash(data, hashKey))
}

// Hash computes the raw HMAC-SHA256 digest of data keyed with hashKey.
func Hash(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
