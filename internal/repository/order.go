package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/koperasi/coopmart/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	insertOrderQuery = `
						INSERT INTO orders (order_number, member_id, status, payment_status, total,
						                    voucher_code, shipping_address, payment_method, notes)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
						RETURNING id, created_at, updated_at
`
	insertOrderItemQuery = `
						INSERT INTO order_items (order_id, product_id, quantity, unit_price)
						VALUES ($1, $2, $3, $4)
						RETURNING id
`
	selectOrderByNumberQuery = `
						SELECT id, order_number, member_id, status, payment_status, total,
						       voucher_code, shipping_address, payment_method, notes,
						       gateway_token, gateway_redirect_url, gateway_transaction_id,
						       token_expires_at, created_at, updated_at
						FROM orders
						WHERE order_number = $1
`
	selectOrderItemsQuery = `
						SELECT id, order_id, product_id, quantity, unit_price
						FROM order_items
						WHERE order_id = $1
						ORDER BY id
`
	updateGatewaySessionQuery = `
						UPDATE orders
						SET gateway_token = $2, gateway_redirect_url = $3, token_expires_at = $4, updated_at = now()
						WHERE order_number = $1
`
	// the payment_status guard makes every transition forward-only: a replayed
	// or out-of-order notification affects zero rows
	markPaidQuery = `
						UPDATE orders
						SET status = 'processing', payment_status = 'paid', gateway_transaction_id = $2, updated_at = now()
						WHERE order_number = $1 AND payment_status = 'pending'
						RETURNING id
`
	markFailedQuery = `
						UPDATE orders
						SET status = 'cancelled', payment_status = 'failed', gateway_transaction_id = $2, updated_at = now()
						WHERE order_number = $1 AND payment_status = 'pending'
						RETURNING id
`
	markNeedsReviewQuery = `
						UPDATE orders
						SET status = 'needs_review', gateway_transaction_id = $2, updated_at = now()
						WHERE order_number = $1 AND payment_status = 'pending' AND status <> 'needs_review'
						RETURNING id
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder reserves stock for every item and inserts the order with its
// items in a single transaction. Unit prices and the order total come from
// the reservation query, never from the caller. Any failed reservation rolls
// the whole checkout back.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) (*models.Order, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var total int64
	for i := range items {
		price, err := reserveStock(ctx, tx, items[i].ProductID, items[i].Quantity)
		if err != nil {
			return nil, err
		}
		items[i].UnitPrice = price
		total += price * items[i].Quantity
	}

	order.Status = models.OrderStatusPending
	order.PaymentStatus = models.PaymentStatusPending
	order.Total = total

	err = tx.QueryRow(ctx, insertOrderQuery,
		order.Number, order.MemberID, order.Status, order.PaymentStatus, order.Total,
		order.VoucherCode, order.ShippingAddress, order.PaymentMethod, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx, insertOrderItemQuery,
			items[i].OrderID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice,
		).Scan(&items[i].ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByNumber returns order by number
func (or *OrderRepository) GetOrderByNumber(ctx context.Context, num string) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByNumberQuery, num).Scan(
		&order.ID, &order.Number, &order.MemberID, &order.Status, &order.PaymentStatus, &order.Total,
		&order.VoucherCode, &order.ShippingAddress, &order.PaymentMethod, &order.Notes,
		&order.GatewayToken, &order.GatewayRedirectURL, &order.GatewayTransactionID,
		&order.TokenExpiresAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrderItems returns order items
func (or *OrderRepository) GetOrderItems(ctx context.Context, orderID uint64) ([]models.OrderItem, error) {
	rows, err := or.db.Query(ctx, selectOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		item := models.OrderItem{}
		err = rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// SaveGatewaySession persists the payment session returned by the gateway.
func (or *OrderRepository) SaveGatewaySession(ctx context.Context, num string, session models.PaymentSession) error {
	cmd, err := or.db.Exec(ctx, updateGatewaySessionQuery, num, session.Token, session.RedirectURL, session.ExpiresAt)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// MarkPaid moves a pending order to paid/processing and enqueues the success
// notification in the same transaction. Returns false when the order was no
// longer pending, in which case nothing is written.
func (or *OrderRepository) MarkPaid(ctx context.Context, num, transactionID string, notifyPayload []byte) (bool, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var orderID uint64
	err = tx.QueryRow(ctx, markPaidQuery, num, transactionID).Scan(&orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := enqueueTask(ctx, tx, num, models.EventPaymentSuccess, notifyPayload); err != nil {
		return false, err
	}

	return true, tx.Commit(ctx)
}

// MarkFailed moves a pending order to failed/cancelled, releases the reserved
// stock of all its items and enqueues the failure notification, all in one
// transaction. The payment_status guard means a replayed failure notification
// cannot release the stock a second time.
func (or *OrderRepository) MarkFailed(ctx context.Context, num, transactionID string, notifyPayload []byte) (bool, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var orderID uint64
	err = tx.QueryRow(ctx, markFailedQuery, num, transactionID).Scan(&orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := tx.Exec(ctx, releaseOrderStockQuery, orderID); err != nil {
		return false, err
	}

	if err := enqueueTask(ctx, tx, num, models.EventPaymentFailed, notifyPayload); err != nil {
		return false, err
	}

	return true, tx.Commit(ctx)
}

// MarkNeedsReview parks a pending order for manual fraud review. Payment
// status and stock stay untouched; a later terminal notification still
// resolves the order.
func (or *OrderRepository) MarkNeedsReview(ctx context.Context, num, transactionID string, notifyPayload []byte) (bool, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var orderID uint64
	err = tx.QueryRow(ctx, markNeedsReviewQuery, num, transactionID).Scan(&orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := enqueueTask(ctx, tx, num, models.EventPaymentReview, notifyPayload); err != nil {
		return false, err
	}

	return true, tx.Commit(ctx)
}
