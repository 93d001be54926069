package models

import "time"

// TaskStatus is notification task status
type TaskStatus string

const (
	TaskStatusQueued     TaskStatus = "queued"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusDead       TaskStatus = "dead"
)

// notification event types
const (
	EventPaymentSuccess = "payment_success"
	EventPaymentFailed  = "payment_failed"
	EventPaymentReview  = "payment_review"
)

// NotificationTask is one unit of deferred notification work. Tasks are
// enqueued in the same transaction as the order state change and survive
// process restarts; delivery is retried with a visibility timeout until
// the attempt limit is reached.
type NotificationTask struct {
	ID            string
	OrderNumber   string
	EventType     string
	Payload       []byte
	Status        TaskStatus
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
