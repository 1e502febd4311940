// Package webhook verifies the authenticity and freshness of signed webhook
// deliveries from the payment gateway.
//
// A delivery carries a signature header of the form
//
//	t=1700000000,v1=5257a869e7ecebeda32affa62cdca3fa51cad7e77a0e56ff536d0ce8e108d8bd
//
// where t is the signing time in Unix seconds and every v1 is a hex-encoded
// HMAC-SHA256 of "{t}.{payload}" keyed with the endpoint's signing secret.
// Verification stops at the first failed step: header shape, timestamp
// tolerance, then digest comparison. Only a payload that passed all three is
// decoded into an event.
package webhook
