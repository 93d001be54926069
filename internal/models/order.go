package models

import "time"

// OrderStatus is order fulfillment status
type OrderStatus string

const (
	// OrderStatusPending - order is created, payment is not confirmed yet
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing - payment is confirmed, order goes to fulfillment
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusCancelled - payment ultimately failed, reserved stock is returned
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusNeedsReview - gateway captured the payment but flagged it for fraud review
	OrderStatusNeedsReview OrderStatus = "needs_review"
)

// PaymentStatus is order payment status
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsTerminal reports whether no later notification may change the payment status.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// Order is order entity. Number is the externally visible order number and
// the correlation key for the payment gateway. Total is the authoritative
// amount in minor currency units, computed once at checkout.
type Order struct {
	ID                   uint64
	Number               string
	MemberID             uint64
	Status               OrderStatus
	PaymentStatus        PaymentStatus
	Total                int64
	VoucherCode          string
	ShippingAddress      string
	PaymentMethod        string
	Notes                string
	GatewayToken         string
	GatewayRedirectURL   string
	GatewayTransactionID string
	TokenExpiresAt       *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// OrderItem is a single order line with the unit price snapshot taken at
// checkout time. Immutable after creation.
type OrderItem struct {
	ID        uint64
	OrderID   uint64
	ProductID uint64
	Quantity  int64
	UnitPrice int64
}
