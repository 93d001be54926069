package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/koperasi/coopmart/internal/gateway"
	"github.com/koperasi/coopmart/internal/middleware"
	"github.com/koperasi/coopmart/internal/models"
)

type PaymentService interface {
	// IssueToken returns a payment session for the order, idempotently
	IssueToken(ctx context.Context, memberID uint64, num string, grossAmount int64, customer gateway.CustomerDetails) (*models.PaymentSession, error)
}

// PaymentHandler represents HTTP handler for payment token requests
type PaymentHandler struct {
	svc PaymentService
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type customerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type tokenRequest struct {
	GrossAmount int64           `json:"gross_amount"`
	Customer    customerRequest `json:"customer_details"`
}

type tokenResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// IssueToken mints or reuses a gateway payment session for a pending order
// 200 — session issued or reused;
// 400 — bad request;
// 401 — unauthenticated;
// 404 — order does not exist or belongs to another member;
// 409 — order is not pending or declared amount differs from the total;
// 422 — malformed order number;
// 502 — gateway unavailable, safe to retry;
// 500 — internal error.
func (ph *PaymentHandler) IssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, ok := middleware.MemberID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		num := chi.URLParam(r, "number")
		if num == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		session, err := ph.svc.IssueToken(r.Context(), memberID, num, req.GrossAmount, gateway.CustomerDetails{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Email:     req.Customer.Email,
			Phone:     req.Customer.Phone,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidOrderNumber):
				http.Error(w, "invalid order number", http.StatusUnprocessableEntity)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrOrderNotPending):
				http.Error(w, "order is not pending", http.StatusConflict)
			case errors.Is(err, models.ErrAmountMismatch):
				http.Error(w, "amount mismatch", http.StatusConflict)
			case errors.Is(err, models.ErrGatewayUnavailable):
				http.Error(w, "payment gateway unavailable", http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(tokenResponse{
			Token:       session.Token,
			RedirectURL: session.RedirectURL,
		}); err != nil {
			return
		}
	}
}
