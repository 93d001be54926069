package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Signature computes the gateway signature for a notification: the sha512 hex
// digest of order id, status code and gross amount concatenated with the
// merchant server key.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature checks a notification's signature key against the server
// key in constant time.
func VerifySignature(n *Notification, serverKey string) bool {
	want := Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	return hmac.Equal([]byte(want), []byte(n.SignatureKey))
}
