package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/koperasi/coopmart/internal/middleware"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/koperasi/coopmart/internal/service"
)

type CheckoutService interface {
	// Checkout validates the cart and creates a pending order with reserved stock
	Checkout(ctx context.Context, in service.CheckoutInput) (*models.Order, error)
}

// CheckoutHandler represents HTTP handler for checkout requests
type CheckoutHandler struct {
	svc CheckoutService
}

// NewCheckoutHandler creates new CheckoutHandler instance
func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type checkoutItemRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type checkoutRequest struct {
	Items           []checkoutItemRequest `json:"items"`
	ShippingAddress string                `json:"shipping_address"`
	PaymentMethod   string                `json:"payment_method"`
	Notes           string                `json:"notes,omitempty"`
	VoucherCode     string                `json:"voucher_code,omitempty"`
}

type checkoutResponse struct {
	OrderNumber string `json:"order_number"`
	Total       int64  `json:"total"`
}

// Checkout creates order from cart
// 200 — order created, stock reserved;
// 400 — bad request (empty cart, bad quantity, unknown or inactive product);
// 401 — unauthenticated;
// 409 — insufficient stock;
// 500 — internal error.
func (ch *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, ok := middleware.MemberID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		in := service.CheckoutInput{
			MemberID:        memberID,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Notes:           req.Notes,
			VoucherCode:     req.VoucherCode,
		}
		for _, item := range req.Items {
			in.Items = append(in.Items, service.CheckoutItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order, err := ch.svc.Checkout(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmptyCart),
				errors.Is(err, models.ErrInvalidQuantity),
				errors.Is(err, models.ErrDuplicateCartItem),
				errors.Is(err, models.ErrMalformedPayload):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound),
				errors.Is(err, models.ErrProductUnavailable):
				http.Error(w, "product is not available", http.StatusBadRequest)
			case errors.Is(err, models.ErrInsufficientStock):
				http.Error(w, "insufficient stock", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(checkoutResponse{
			OrderNumber: order.Number,
			Total:       order.Total,
		}); err != nil {
			return
		}
	}
}
