package gateway

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/koperasi/coopmart/internal/models"
)

// Notification is the gateway status callback payload. The schema is strict:
// unknown raw statuses and malformed amounts are rejected at this boundary,
// before any of the transition logic sees them.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	TransactionTime   string `json:"transaction_time"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

var knownTransactionStatuses = map[models.TransactionStatus]struct{}{
	models.TransactionStatusCapture:    {},
	models.TransactionStatusSettlement: {},
	models.TransactionStatusPending:    {},
	models.TransactionStatusDeny:       {},
	models.TransactionStatusCancel:     {},
	models.TransactionStatusExpire:     {},
	models.TransactionStatusFailure:    {},
}

var knownFraudStatuses = map[models.FraudStatus]struct{}{
	models.FraudStatusAccept:    {},
	models.FraudStatusChallenge: {},
	models.FraudStatusDeny:      {},
}

// ParseNotification decodes and validates a raw webhook body.
func ParseNotification(raw []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, models.ErrMalformedPayload
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// Validate checks the required fields and enumerations.
func (n *Notification) Validate() error {
	if n.OrderID == "" || n.StatusCode == "" || n.GrossAmount == "" || n.SignatureKey == "" {
		return models.ErrMalformedPayload
	}
	if _, ok := knownTransactionStatuses[n.Status()]; !ok {
		return models.ErrMalformedPayload
	}
	if n.FraudStatus != "" {
		if _, ok := knownFraudStatuses[n.Fraud()]; !ok {
			return models.ErrMalformedPayload
		}
	}
	if _, err := ParseGrossAmount(n.GrossAmount); err != nil {
		return models.ErrMalformedPayload
	}
	return nil
}

// Status returns the typed transaction status.
func (n *Notification) Status() models.TransactionStatus {
	return models.TransactionStatus(n.TransactionStatus)
}

// Fraud returns the typed fraud signal.
func (n *Notification) Fraud() models.FraudStatus {
	return models.FraudStatus(n.FraudStatus)
}

// Amount returns the gross amount in minor units. Validate must have passed.
func (n *Notification) Amount() int64 {
	amount, _ := ParseGrossAmount(n.GrossAmount)
	return amount
}

// ParseGrossAmount parses the gateway's decimal string into minor currency
// units. Exact arithmetic only: at most two fraction digits, and they must be
// zero, since the platform currency has no sub-unit.
func ParseGrossAmount(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		return 0, models.ErrMalformedPayload
	}
	if hasFrac {
		if frac == "" || len(frac) > 2 {
			return 0, models.ErrMalformedPayload
		}
		for _, c := range frac {
			if c != '0' {
				return 0, models.ErrMalformedPayload
			}
		}
	}

	var amount int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0, models.ErrMalformedPayload
		}
		if amount > (1<<62)/10 {
			return 0, models.ErrMalformedPayload
		}
		amount = amount*10 + int64(c-'0')
	}

	return amount, nil
}

// FormatGrossAmount renders a minor-unit amount the way the gateway expects it.
func FormatGrossAmount(amount int64) string {
	return strconv.FormatInt(amount, 10) + ".00"
}
