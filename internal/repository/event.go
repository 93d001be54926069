package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/koperasi/coopmart/internal/repository/postgres"
)

const insertEventQuery = `
						INSERT INTO payment_events (id, order_number, transaction_id, transaction_status,
						                            fraud_status, gross_amount, payload)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING received_at
`

// EventRepository is the payment audit log. Write-only: rows are never
// updated or deleted, and duplicates are not filtered here.
type EventRepository struct {
	db *postgres.DB
}

// NewEventRepository creates new EventRepository instance
func NewEventRepository(db *postgres.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Append inserts a new payment event row.
func (er *EventRepository) Append(ctx context.Context, event *models.PaymentEvent) (*models.PaymentEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	err := er.db.QueryRow(ctx, insertEventQuery,
		event.ID, event.OrderNumber, event.TransactionID, event.TransactionStatus,
		event.FraudStatus, event.GrossAmount, event.Payload,
	).Scan(&event.ReceivedAt)
	if err != nil {
		return nil, err
	}

	return event, nil
}
