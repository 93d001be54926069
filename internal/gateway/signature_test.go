package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const serverKey = "SB-Mid-server-test"

	n := &Notification{
		OrderID:     "17556163210001",
		StatusCode:  "200",
		GrossAmount: "250000.00",
	}
	n.SignatureKey = Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)

	assert.True(t, VerifySignature(n, serverKey))

	t.Run("wrong server key", func(t *testing.T) {
		assert.False(t, VerifySignature(n, "SB-Mid-server-other"))
	})

	t.Run("tampered amount", func(t *testing.T) {
		forged := *n
		forged.GrossAmount = "1.00"
		assert.False(t, VerifySignature(&forged, serverKey))
	})

	t.Run("tampered order id", func(t *testing.T) {
		forged := *n
		forged.OrderID = "17556163210002"
		assert.False(t, VerifySignature(&forged, serverKey))
	})

	t.Run("empty signature", func(t *testing.T) {
		forged := *n
		forged.SignatureKey = ""
		assert.False(t, VerifySignature(&forged, serverKey))
	})
}
