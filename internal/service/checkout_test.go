package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/koperasi/coopmart/internal/service/mocks"
	"github.com/phedde/luhn-algorithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      CheckoutInput
		wantErr error
	}{
		{
			name:    "empty cart",
			in:      CheckoutInput{MemberID: 1},
			wantErr: models.ErrEmptyCart,
		},
		{
			name: "zero quantity",
			in: CheckoutInput{
				MemberID: 1,
				Items:    []CheckoutItem{{ProductID: 10, Quantity: 0}},
			},
			wantErr: models.ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			in: CheckoutInput{
				MemberID: 1,
				Items:    []CheckoutItem{{ProductID: 10, Quantity: -2}},
			},
			wantErr: models.ErrInvalidQuantity,
		},
		{
			name: "duplicate cart item",
			in: CheckoutInput{
				MemberID: 1,
				Items: []CheckoutItem{
					{ProductID: 10, Quantity: 1},
					{ProductID: 10, Quantity: 2},
				},
			},
			wantErr: models.ErrDuplicateCartItem,
		},
		{
			name: "voucher code too long",
			in: CheckoutInput{
				MemberID:    1,
				Items:       []CheckoutItem{{ProductID: 10, Quantity: 1}},
				VoucherCode: strings.Repeat("x", 65),
			},
			wantErr: models.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// validation failures never reach the repository
			repo := mocks.NewMockCheckoutOrderRepository(ctrl)
			svc := NewCheckoutService(repo)

			_, err := svc.Checkout(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCheckoutOrderRepository(ctrl)
	svc := NewCheckoutService(repo)

	in := CheckoutInput{
		MemberID: 7,
		Items: []CheckoutItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1},
		},
		ShippingAddress: "Jl. Koperasi 1",
		PaymentMethod:   "gateway",
	}

	repo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *models.Order, items []models.OrderItem) (*models.Order, error) {
			n, err := strconv.ParseInt(order.Number, 10, 64)
			require.NoError(t, err)
			assert.True(t, luhn.IsValid(n))
			assert.Equal(t, uint64(7), order.MemberID)
			require.Len(t, items, 2)
			assert.Equal(t, int64(2), items[0].Quantity)

			created := *order
			created.ID = 100
			created.Total = 250000
			return &created, nil
		})

	order, err := svc.Checkout(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(250000), order.Total)
}

func TestCheckoutRetriesNumberCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCheckoutOrderRepository(ctrl)
	svc := NewCheckoutService(repo)

	in := CheckoutInput{
		MemberID: 7,
		Items:    []CheckoutItem{{ProductID: 10, Quantity: 1}},
	}

	gomock.InOrder(
		repo.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, models.ErrConflictData),
		repo.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *models.Order, _ []models.OrderItem) (*models.Order, error) {
				created := *order
				created.Total = 5000
				return &created, nil
			}),
	)

	order, err := svc.Checkout(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), order.Total)
}

func TestCheckoutGivesUpAfterRepeatedCollisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCheckoutOrderRepository(ctrl)
	svc := NewCheckoutService(repo)

	repo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrConflictData).
		Times(createOrderAttempts)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		MemberID: 7,
		Items:    []CheckoutItem{{ProductID: 10, Quantity: 1}},
	})
	assert.ErrorIs(t, err, models.ErrConflictData)
}

func TestNewOrderNumberIsLuhnValid(t *testing.T) {
	for i := 0; i < 10; i++ {
		num := newOrderNumber()
		n, err := strconv.ParseInt(num, 10, 64)
		require.NoError(t, err)
		assert.True(t, luhn.IsValid(n), "number %s", num)
	}
}
