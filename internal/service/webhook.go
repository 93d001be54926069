package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/koperasi/coopmart/internal/gateway"
	"github.com/koperasi/coopmart/internal/logger"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/koperasi/coopmart/internal/queue"
	"go.uber.org/zap"
)

// WebhookOrderRepository is interface for applying reconciliation outcomes
type WebhookOrderRepository interface {
	// GetOrderByNumber returns order by number
	GetOrderByNumber(ctx context.Context, num string) (*models.Order, error)
	// MarkPaid applies pending->paid, returns false when the order was not pending
	MarkPaid(ctx context.Context, num, transactionID string, notifyPayload []byte) (bool, error)
	// MarkFailed applies pending->failed and releases reserved stock
	MarkFailed(ctx context.Context, num, transactionID string, notifyPayload []byte) (bool, error)
	// MarkNeedsReview parks the order for manual fraud review
	MarkNeedsReview(ctx context.Context, num, transactionID string, notifyPayload []byte) (bool, error)
}

// PaymentEventRepository is the append-only audit log
type PaymentEventRepository interface {
	Append(ctx context.Context, event *models.PaymentEvent) (*models.PaymentEvent, error)
}

// WebhookService reconciles gateway notifications against order state.
// Notifications arrive at least once and possibly out of order; every
// authentic one is recorded, and state only ever moves forward.
type WebhookService struct {
	orders    WebhookOrderRepository
	events    PaymentEventRepository
	serverKey string
}

// NewWebhookService creates new WebhookService instance
func NewWebhookService(orders WebhookOrderRepository, events PaymentEventRepository, serverKey string) *WebhookService {
	return &WebhookService{
		orders:    orders,
		events:    events,
		serverKey: serverKey,
	}
}

// HandleNotification verifies, records and applies one gateway notification.
// A nil return means the event is durably recorded and the caller may
// acknowledge; any error suppresses the acknowledgement so the gateway
// retries.
func (ws *WebhookService) HandleNotification(ctx context.Context, raw []byte) error {
	n, err := gateway.ParseNotification(raw)
	if err != nil {
		return err
	}

	if !gateway.VerifySignature(n, ws.serverKey) {
		logger.Log.Warn("rejected notification with invalid signature",
			zap.String("number", n.OrderID),
			zap.String("transaction_status", n.TransactionStatus),
			zap.String("payment_type", n.PaymentType))
		return models.ErrInvalidSignature
	}

	// audit first: every authentic notification is recorded, replays and
	// notifications for unknown orders included
	event := &models.PaymentEvent{
		OrderNumber:       n.OrderID,
		TransactionID:     n.TransactionID,
		TransactionStatus: n.Status(),
		FraudStatus:       n.Fraud(),
		GrossAmount:       n.Amount(),
		Payload:           raw,
	}
	if _, err := ws.events.Append(ctx, event); err != nil {
		return err
	}

	order, err := ws.orders.GetOrderByNumber(ctx, n.OrderID)
	if err != nil {
		return err
	}

	if n.Amount() != order.Total {
		logger.Log.Warn("notification amount does not match order total",
			zap.String("number", order.Number),
			zap.Int64("notified", n.Amount()),
			zap.Int64("total", order.Total))
		return models.ErrAmountMismatch
	}

	outcome := models.Transition(order.PaymentStatus, n.Status(), n.Fraud())
	if !outcome.Apply {
		logger.Log.Debug("notification recorded without transition",
			zap.String("number", order.Number),
			zap.String("payment_status", string(order.PaymentStatus)),
			zap.String("transaction_status", n.TransactionStatus))
		return nil
	}

	payload, err := notifyPayload(order, outcome)
	if err != nil {
		return err
	}

	var applied bool
	switch {
	case outcome.ReleaseStock:
		applied, err = ws.orders.MarkFailed(ctx, order.Number, n.TransactionID, payload)
	case outcome.NeedsReview:
		applied, err = ws.orders.MarkNeedsReview(ctx, order.Number, n.TransactionID, payload)
	default:
		applied, err = ws.orders.MarkPaid(ctx, order.Number, n.TransactionID, payload)
	}
	if err != nil {
		return err
	}

	if !applied {
		// lost the race against a concurrent notification, which is fine:
		// the winning transition already did the work
		logger.Log.Debug("transition superseded", zap.String("number", order.Number))
		return nil
	}

	logger.Log.Info("order reconciled",
		zap.String("number", order.Number),
		zap.String("payment_status", string(outcome.PaymentStatus)),
		zap.String("status", string(outcome.OrderStatus)),
		zap.Bool("stock_released", outcome.ReleaseStock))

	return nil
}

func notifyPayload(order *models.Order, outcome models.TransitionOutcome) ([]byte, error) {
	eventType := models.EventPaymentSuccess
	switch {
	case outcome.ReleaseStock:
		eventType = models.EventPaymentFailed
	case outcome.NeedsReview:
		eventType = models.EventPaymentReview
	}

	return json.Marshal(queue.OrderEvent{
		OrderNumber:   order.Number,
		MemberID:      order.MemberID,
		EventType:     eventType,
		OrderStatus:   string(outcome.OrderStatus),
		PaymentStatus: string(outcome.PaymentStatus),
		Total:         order.Total,
		OccurredAt:    time.Now(),
	})
}
