package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/koperasi/coopmart/internal/logger"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/phedde/luhn-algorithm"
	"go.uber.org/zap"
)

const maxVoucherCodeLen = 64

// number collisions are resolved by regenerating against the unique index
const createOrderAttempts = 3

// CheckoutItem is one cart line.
type CheckoutItem struct {
	ProductID uint64
	Quantity  int64
}

// CheckoutInput is a validated-at-the-edge checkout request. Prices are
// deliberately absent: they are always recomputed from the catalog.
type CheckoutInput struct {
	MemberID        uint64
	Items           []CheckoutItem
	ShippingAddress string
	PaymentMethod   string
	Notes           string
	VoucherCode     string
}

// CheckoutOrderRepository is interface for interacting with order-related data
type CheckoutOrderRepository interface {
	// CreateOrder reserves stock and inserts the order with its items atomically
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) (*models.Order, error)
}

// CheckoutService turns a cart into a pending order with reserved stock.
type CheckoutService struct {
	repo CheckoutOrderRepository
}

// NewCheckoutService creates new CheckoutService instance
func NewCheckoutService(repo CheckoutOrderRepository) *CheckoutService {
	return &CheckoutService{repo: repo}
}

// Checkout validates the cart and creates a pending/pending order. All
// reservations and inserts happen in one transaction: a single item with
// insufficient stock aborts the whole checkout with no side effects.
func (cs *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, models.ErrEmptyCart
	}
	if len(in.VoucherCode) > maxVoucherCodeLen {
		return nil, models.ErrMalformedPayload
	}

	seen := make(map[uint64]struct{}, len(in.Items))
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, models.ErrInvalidQuantity
		}
		if _, ok := seen[it.ProductID]; ok {
			return nil, models.ErrDuplicateCartItem
		}
		seen[it.ProductID] = struct{}{}
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	for attempt := 0; attempt < createOrderAttempts; attempt++ {
		order := &models.Order{
			Number:          newOrderNumber(),
			MemberID:        in.MemberID,
			ShippingAddress: in.ShippingAddress,
			PaymentMethod:   in.PaymentMethod,
			Notes:           in.Notes,
			VoucherCode:     in.VoucherCode,
		}

		created, err := cs.repo.CreateOrder(ctx, order, items)
		if errors.Is(err, models.ErrConflictData) {
			logger.Log.Debug("order number collision, regenerating", zap.String("number", order.Number))
			continue
		}
		if err != nil {
			return nil, err
		}

		logger.Log.Info("order created",
			zap.String("number", created.Number),
			zap.Uint64("member_id", created.MemberID),
			zap.Int64("total", created.Total))

		return created, nil
	}

	return nil, models.ErrConflictData
}

// newOrderNumber generates a numeric order number with a Luhn check digit,
// so inbound references can be sanity-checked before touching the database.
func newOrderNumber() string {
	base := time.Now().UnixMicro()
	for d := int64(0); d < 10; d++ {
		n := base*10 + d
		if luhn.IsValid(n) {
			return strconv.FormatInt(n, 10)
		}
	}
	// exactly one check digit satisfies Luhn, the loop always returns
	return strconv.FormatInt(base, 10)
}
