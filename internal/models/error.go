package models

import "errors"

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrDuplicateCartItem  = errors.New("duplicate product in cart")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrAmountMismatch     = errors.New("amount does not match order total")
	ErrInvalidSignature   = errors.New("invalid notification signature")
	ErrMalformedPayload   = errors.New("malformed notification payload")
	ErrGatewayUnavailable = errors.New("payment gateway is unavailable")
	ErrInternalError      = errors.New("internal error")
)
