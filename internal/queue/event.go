package queue

import "time"

// OrderEvent is the message published to the notification topic. The
// notification service renders and delivers user messaging from it; delivery
// is best effort and never blocks reconciliation.
type OrderEvent struct {
	OrderNumber   string    `json:"order_number"`
	MemberID      uint64    `json:"member_id"`
	EventType     string    `json:"event_type"`
	OrderStatus   string    `json:"order_status"`
	PaymentStatus string    `json:"payment_status"`
	Total         int64     `json:"total"`
	OccurredAt    time.Time `json:"occurred_at"`
}
