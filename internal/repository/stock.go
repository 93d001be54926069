package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/koperasi/coopmart/internal/models"
)

const (
	// conditional decrement: succeeds only when enough stock is available,
	// so two checkouts contending for the last unit cannot both win
	reserveStockQuery = `
						UPDATE products
						SET stock = stock - $2
						WHERE id = $1 AND active AND stock >= $2
						RETURNING price
`
	// release every reservation of an order in one statement
	releaseOrderStockQuery = `
						UPDATE products p
						SET stock = p.stock + oi.quantity
						FROM order_items oi
						WHERE oi.order_id = $1 AND p.id = oi.product_id
`
	selectProductActiveQuery = `
						SELECT active FROM products
						WHERE id = $1
`
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// reserveStock atomically decrements available stock and returns the current
// unit price. Distinguishes missing, inactive and out-of-stock products.
func reserveStock(ctx context.Context, q querier, productID uint64, qty int64) (int64, error) {
	var price int64
	err := q.QueryRow(ctx, reserveStockQuery, productID, qty).Scan(&price)
	if err == nil {
		return price, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	var active bool
	err = q.QueryRow(ctx, selectProductActiveQuery, productID).Scan(&active)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return 0, models.ErrDataNotFound
	case err != nil:
		return 0, err
	case !active:
		return 0, models.ErrProductUnavailable
	default:
		return 0, models.ErrInsufficientStock
	}
}
