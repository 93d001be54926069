package worker

import (
	"context"
	"time"

	"github.com/koperasi/coopmart/internal/logger"
	"github.com/koperasi/coopmart/internal/models"
	"go.uber.org/zap"
)

const (
	tickInterval = 5 * time.Second
	claimLimit   = 10
	maxAttempts  = 5
	// a claim holds the task at least this long; a crashed worker's claim
	// lapses and the task becomes due again
	visibility = 30 * time.Second
)

// TaskRepository is interface for the durable notification queue
type TaskRepository interface {
	// ClaimDue claims up to limit due tasks
	ClaimDue(ctx context.Context, limit, maxAttempts int, visibility time.Duration) ([]models.NotificationTask, error)
	// Complete marks a task delivered
	Complete(ctx context.Context, id string) error
	// Fail requeues a task or marks it dead after the attempt limit
	Fail(ctx context.Context, id string, maxAttempts int) error
}

// Publisher delivers notification events to the broker
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// NotificationDispatcher drains the notification queue into the broker.
// Tasks are acknowledged only after the publish succeeds, so a failed
// delivery is retried after the visibility timeout.
type NotificationDispatcher struct {
	tasks TaskRepository
	pub   Publisher
}

// NewNotificationDispatcher creates new NotificationDispatcher instance
func NewNotificationDispatcher(tasks TaskRepository, pub Publisher) *NotificationDispatcher {
	return &NotificationDispatcher{tasks: tasks, pub: pub}
}

// Run dispatches due tasks until the context is cancelled.
func (nd *NotificationDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("notification dispatcher is done")
			return
		case <-ticker.C:
			nd.DispatchDue(ctx)
		}
	}
}

// DispatchDue claims and delivers one batch of due tasks.
func (nd *NotificationDispatcher) DispatchDue(ctx context.Context) {
	tasks, err := nd.tasks.ClaimDue(ctx, claimLimit, maxAttempts, visibility)
	if err != nil {
		logger.Log.Error("claim notification tasks", zap.Error(err))
		return
	}

	for _, task := range tasks {
		if err := nd.pub.Publish(ctx, task.OrderNumber, task.Payload); err != nil {
			logger.Log.Error("publish notification event",
				zap.String("task", task.ID),
				zap.String("number", task.OrderNumber),
				zap.Int("attempts", task.Attempts),
				zap.Error(err))
			if err := nd.tasks.Fail(ctx, task.ID, maxAttempts); err != nil {
				logger.Log.Error("fail notification task", zap.String("task", task.ID), zap.Error(err))
			}
			continue
		}

		if err := nd.tasks.Complete(ctx, task.ID); err != nil {
			logger.Log.Error("complete notification task", zap.String("task", task.ID), zap.Error(err))
		}
	}
}
