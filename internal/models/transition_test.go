package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current PaymentStatus
		status  TransactionStatus
		fraud   FraudStatus
		want    TransitionOutcome
	}{
		{
			name:    "capture accept pays the order",
			current: PaymentStatusPending,
			status:  TransactionStatusCapture,
			fraud:   FraudStatusAccept,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusPaid,
				OrderStatus:   OrderStatusProcessing,
				Apply:         true,
			},
		},
		{
			name:    "settlement accept pays the order",
			current: PaymentStatusPending,
			status:  TransactionStatusSettlement,
			fraud:   FraudStatusAccept,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusPaid,
				OrderStatus:   OrderStatusProcessing,
				Apply:         true,
			},
		},
		{
			name:    "settlement without fraud signal pays the order",
			current: PaymentStatusPending,
			status:  TransactionStatusSettlement,
			fraud:   "",
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusPaid,
				OrderStatus:   OrderStatusProcessing,
				Apply:         true,
			},
		},
		{
			name:    "capture challenge parks the order for review",
			current: PaymentStatusPending,
			status:  TransactionStatusCapture,
			fraud:   FraudStatusChallenge,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusPending,
				OrderStatus:   OrderStatusNeedsReview,
				NeedsReview:   true,
				Apply:         true,
			},
		},
		{
			name:    "capture fraud deny parks the order for review",
			current: PaymentStatusPending,
			status:  TransactionStatusCapture,
			fraud:   FraudStatusDeny,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusPending,
				OrderStatus:   OrderStatusNeedsReview,
				NeedsReview:   true,
				Apply:         true,
			},
		},
		{
			name:    "deny fails the order and releases stock",
			current: PaymentStatusPending,
			status:  TransactionStatusDeny,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusFailed,
				OrderStatus:   OrderStatusCancelled,
				ReleaseStock:  true,
				Apply:         true,
			},
		},
		{
			name:    "cancel fails the order and releases stock",
			current: PaymentStatusPending,
			status:  TransactionStatusCancel,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusFailed,
				OrderStatus:   OrderStatusCancelled,
				ReleaseStock:  true,
				Apply:         true,
			},
		},
		{
			name:    "expire fails the order and releases stock",
			current: PaymentStatusPending,
			status:  TransactionStatusExpire,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusFailed,
				OrderStatus:   OrderStatusCancelled,
				ReleaseStock:  true,
				Apply:         true,
			},
		},
		{
			name:    "failure fails the order and releases stock",
			current: PaymentStatusPending,
			status:  TransactionStatusFailure,
			want: TransitionOutcome{
				PaymentStatus: PaymentStatusFailed,
				OrderStatus:   OrderStatusCancelled,
				ReleaseStock:  true,
				Apply:         true,
			},
		},
		{
			name:    "pending is record-only",
			current: PaymentStatusPending,
			status:  TransactionStatusPending,
			want:    TransitionOutcome{PaymentStatus: PaymentStatusPending},
		},
		{
			name:    "paid absorbs settlement replay",
			current: PaymentStatusPaid,
			status:  TransactionStatusSettlement,
			fraud:   FraudStatusAccept,
			want:    TransitionOutcome{PaymentStatus: PaymentStatusPaid},
		},
		{
			name:    "paid absorbs late expiry",
			current: PaymentStatusPaid,
			status:  TransactionStatusExpire,
			want:    TransitionOutcome{PaymentStatus: PaymentStatusPaid},
		},
		{
			name:    "failed absorbs late settlement",
			current: PaymentStatusFailed,
			status:  TransactionStatusSettlement,
			fraud:   FraudStatusAccept,
			want:    TransitionOutcome{PaymentStatus: PaymentStatusFailed},
		},
		{
			name:    "failed absorbs cancel replay",
			current: PaymentStatusFailed,
			status:  TransactionStatusCancel,
			want:    TransitionOutcome{PaymentStatus: PaymentStatusFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.current, tt.status, tt.fraud)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Transition() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// a terminal payment status never moves again, whatever arrives
func TestTransitionTerminalAbsorbs(t *testing.T) {
	statuses := []TransactionStatus{
		TransactionStatusCapture,
		TransactionStatusSettlement,
		TransactionStatusPending,
		TransactionStatusDeny,
		TransactionStatusCancel,
		TransactionStatusExpire,
		TransactionStatusFailure,
	}
	frauds := []FraudStatus{"", FraudStatusAccept, FraudStatusChallenge, FraudStatusDeny}

	for _, current := range []PaymentStatus{PaymentStatusPaid, PaymentStatusFailed} {
		for _, status := range statuses {
			for _, fraud := range frauds {
				got := Transition(current, status, fraud)
				assert.False(t, got.Apply)
				assert.False(t, got.ReleaseStock)
				assert.Equal(t, current, got.PaymentStatus)
			}
		}
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.True(t, PaymentStatusPaid.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
}
