package models

import "time"

// TransactionStatus is raw gateway transaction status
type TransactionStatus string

const (
	TransactionStatusCapture    TransactionStatus = "capture"
	TransactionStatusSettlement TransactionStatus = "settlement"
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusDeny       TransactionStatus = "deny"
	TransactionStatusCancel     TransactionStatus = "cancel"
	TransactionStatusExpire     TransactionStatus = "expire"
	TransactionStatusFailure    TransactionStatus = "failure"
)

// FraudStatus is gateway fraud signal
type FraudStatus string

const (
	FraudStatusAccept    FraudStatus = "accept"
	FraudStatusChallenge FraudStatus = "challenge"
	FraudStatusDeny      FraudStatus = "deny"
)

// PaymentEvent is one gateway notification as received. Append-only audit
// trail: duplicates are expected, rows are never updated or deleted.
type PaymentEvent struct {
	ID                string
	OrderNumber       string
	TransactionID     string
	TransactionStatus TransactionStatus
	FraudStatus       FraudStatus
	GrossAmount       int64
	Payload           []byte
	ReceivedAt        time.Time
}

// PaymentSession is a gateway payment session bound to one pending order.
type PaymentSession struct {
	Token       string
	RedirectURL string
	ExpiresAt   time.Time
}
