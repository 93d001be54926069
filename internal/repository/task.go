package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/koperasi/coopmart/internal/repository/postgres"
)

const (
	insertTaskQuery = `
						INSERT INTO notification_tasks (id, order_number, event_type, payload)
						VALUES ($1, $2, $3, $4)
`
	// claiming pushes next_attempt_at forward: a crashed worker loses its
	// claim after the visibility timeout and the task becomes due again
	claimTasksQuery = `
						UPDATE notification_tasks
						SET status = 'processing', attempts = attempts + 1, next_attempt_at = $1, updated_at = now()
						WHERE id IN (
						    SELECT id FROM notification_tasks
						    WHERE status IN ('queued', 'processing')
						      AND next_attempt_at <= now()
						      AND attempts < $2
						    ORDER BY next_attempt_at
						    LIMIT $3
						    FOR UPDATE SKIP LOCKED
						)
						RETURNING id, order_number, event_type, payload, status, attempts, next_attempt_at, created_at, updated_at
`
	completeTaskQuery = `
						UPDATE notification_tasks
						SET status = 'done', updated_at = now()
						WHERE id = $1
`
	failTaskQuery = `
						UPDATE notification_tasks
						SET status = CASE WHEN attempts >= $2 THEN 'dead' ELSE 'queued' END, updated_at = now()
						WHERE id = $1
`
)

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// enqueueTask inserts a notification task, normally inside the transaction
// that changes the order state.
func enqueueTask(ctx context.Context, tx execer, orderNumber, eventType string, payload []byte) error {
	_, err := tx.Exec(ctx, insertTaskQuery, uuid.NewString(), orderNumber, eventType, payload)
	return err
}

// TaskRepository is the durable notification queue.
type TaskRepository struct {
	db *postgres.DB
}

// NewTaskRepository creates new TaskRepository instance
func NewTaskRepository(db *postgres.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Enqueue inserts a standalone notification task outside a transaction.
func (tr *TaskRepository) Enqueue(ctx context.Context, orderNumber, eventType string, payload []byte) error {
	return enqueueTask(ctx, tr.db, orderNumber, eventType, payload)
}

// ClaimDue claims up to limit due tasks for processing. Claimed tasks stay
// invisible to other workers until visibility elapses.
func (tr *TaskRepository) ClaimDue(ctx context.Context, limit, maxAttempts int, visibility time.Duration) ([]models.NotificationTask, error) {
	rows, err := tr.db.Query(ctx, claimTasksQuery, time.Now().Add(visibility), maxAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.NotificationTask{}

	for rows.Next() {
		task := models.NotificationTask{}
		err = rows.Scan(&task.ID, &task.OrderNumber, &task.EventType, &task.Payload,
			&task.Status, &task.Attempts, &task.NextAttemptAt, &task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			continue
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Complete marks a task as delivered.
func (tr *TaskRepository) Complete(ctx context.Context, id string) error {
	_, err := tr.db.Exec(ctx, completeTaskQuery, id)
	return err
}

// Fail requeues a task for a later attempt, or marks it dead once the
// attempt limit is exhausted.
func (tr *TaskRepository) Fail(ctx context.Context, id string, maxAttempts int) error {
	_, err := tr.db.Exec(ctx, failTaskQuery, id, maxAttempts)
	return err
}
