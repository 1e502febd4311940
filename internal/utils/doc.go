// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes HMAC hashing, JSON response writing, the outbound HTTP client,
// bearer token parsing and trace id generation.
package utils
