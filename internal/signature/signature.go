// Package signature implements the payment verification contract:
// HMAC-SHA256 over "<orderID>|<paymentID>" keyed by the shared secret,
// rendered as lowercase hex.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the canonical signature for an order/payment pair.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided matches the canonical signature exactly.
// No normalization is applied: comparison is case-sensitive and
// byte-for-byte, so a missing or malformed input simply fails to match.
func Verify(orderID, paymentID, provided, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(provided))
}
