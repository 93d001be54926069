package service

import (
	"context"
	"strconv"
	"time"

	"github.com/koperasi/coopmart/internal/gateway"
	"github.com/koperasi/coopmart/internal/logger"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/phedde/luhn-algorithm"
	"go.uber.org/zap"
)

// PaymentOrderRepository is interface for interacting with order-related data
type PaymentOrderRepository interface {
	// GetOrderByNumber returns order by number
	GetOrderByNumber(ctx context.Context, num string) (*models.Order, error)
	// GetOrderItems returns order items
	GetOrderItems(ctx context.Context, orderID uint64) ([]models.OrderItem, error)
	// SaveGatewaySession persists the payment session on the order
	SaveGatewaySession(ctx context.Context, num string, session models.PaymentSession) error
}

// GatewayClient mints payment sessions at the external gateway.
type GatewayClient interface {
	CreateTransaction(ctx context.Context, req gateway.TransactionRequest) (*models.PaymentSession, error)
}

// PaymentService issues gateway payment tokens for pending orders.
type PaymentService struct {
	repo PaymentOrderRepository
	gw   GatewayClient
}

// NewPaymentService creates new PaymentService instance
func NewPaymentService(repo PaymentOrderRepository, gw GatewayClient) *PaymentService {
	return &PaymentService{repo: repo, gw: gw}
}

// IssueToken returns a payment session for the order. Issuance is idempotent
// per order: an unexpired persisted token is reused instead of minting a new
// gateway session. The client-declared amount must equal the stored total
// exactly; the stored total remains the source of truth either way.
func (ps *PaymentService) IssueToken(ctx context.Context, memberID uint64, num string, grossAmount int64, customer gateway.CustomerDetails) (*models.PaymentSession, error) {
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return nil, models.ErrInvalidOrderNumber
	}
	if ok := luhn.IsValid(n); !ok {
		return nil, models.ErrInvalidOrderNumber
	}

	order, err := ps.repo.GetOrderByNumber(ctx, num)
	if err != nil {
		return nil, err
	}

	// an order belonging to someone else does not exist for this caller
	if order.MemberID != memberID {
		return nil, models.ErrDataNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, models.ErrOrderNotPending
	}
	if grossAmount != order.Total {
		logger.Log.Warn("token request amount mismatch",
			zap.String("number", order.Number),
			zap.Int64("declared", grossAmount),
			zap.Int64("total", order.Total))
		return nil, models.ErrAmountMismatch
	}

	if order.GatewayToken != "" && order.TokenExpiresAt != nil && order.TokenExpiresAt.After(time.Now()) {
		return &models.PaymentSession{
			Token:       order.GatewayToken,
			RedirectURL: order.GatewayRedirectURL,
			ExpiresAt:   *order.TokenExpiresAt,
		}, nil
	}

	items, err := ps.repo.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	details := make([]gateway.ItemDetails, 0, len(items))
	for _, item := range items {
		details = append(details, gateway.ItemDetails{
			ID:       strconv.FormatUint(item.ProductID, 10),
			Price:    item.UnitPrice,
			Quantity: item.Quantity,
		})
	}

	session, err := ps.gw.CreateTransaction(ctx, gateway.TransactionRequest{
		OrderNumber: order.Number,
		GrossAmount: order.Total,
		Customer:    customer,
		Items:       details,
	})
	if err != nil {
		return nil, err
	}

	if err := ps.repo.SaveGatewaySession(ctx, order.Number, *session); err != nil {
		return nil, err
	}

	logger.Log.Info("payment session issued", zap.String("number", order.Number))

	return session, nil
}
