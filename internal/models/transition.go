package models

// TransitionOutcome describes what a gateway notification does to an order.
// Apply is false when the notification must only be recorded: the payment
// status is already terminal, or the raw status carries no new information.
type TransitionOutcome struct {
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
	ReleaseStock  bool
	NeedsReview   bool
	Apply         bool
}

// Transition is the payment state machine. It is pure: callers verify the
// notification and persist the outcome. payment_status only moves
// pending->paid or pending->failed; paid and failed absorb every later
// notification. A captured payment with a non-accept fraud signal parks the
// order in needs_review while payment_status stays pending, so a later
// settlement or expiry still resolves it.
func Transition(current PaymentStatus, status TransactionStatus, fraud FraudStatus) TransitionOutcome {
	if current.IsTerminal() {
		return TransitionOutcome{PaymentStatus: current}
	}

	switch status {
	case TransactionStatusCapture, TransactionStatusSettlement:
		// an absent fraud signal means the payment channel has no fraud
		// screening; only an explicit non-accept verdict parks the order
		if fraud != "" && fraud != FraudStatusAccept {
			return TransitionOutcome{
				PaymentStatus: PaymentStatusPending,
				OrderStatus:   OrderStatusNeedsReview,
				NeedsReview:   true,
				Apply:         true,
			}
		}
		return TransitionOutcome{
			PaymentStatus: PaymentStatusPaid,
			OrderStatus:   OrderStatusProcessing,
			Apply:         true,
		}
	case TransactionStatusDeny, TransactionStatusCancel, TransactionStatusExpire, TransactionStatusFailure:
		return TransitionOutcome{
			PaymentStatus: PaymentStatusFailed,
			OrderStatus:   OrderStatusCancelled,
			ReleaseStock:  true,
			Apply:         true,
		}
	default:
		// pending and anything the schema let through: record only
		return TransitionOutcome{PaymentStatus: current}
	}
}
