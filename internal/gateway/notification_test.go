package gateway

import (
	"testing"

	"github.com/koperasi/coopmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotification(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "valid settlement",
			raw: `{"order_id":"17556163210001","status_code":"200","gross_amount":"250000.00",` +
				`"transaction_id":"tx-1","transaction_status":"settlement","payment_type":"bank_transfer",` +
				`"signature_key":"abc"}`,
		},
		{
			name: "valid capture with fraud accept",
			raw: `{"order_id":"17556163210001","status_code":"200","gross_amount":"250000",` +
				`"transaction_status":"capture","fraud_status":"accept","signature_key":"abc"}`,
		},
		{
			name:    "not json",
			raw:     `order_id=17556163210001`,
			wantErr: models.ErrMalformedPayload,
		},
		{
			name: "missing order id",
			raw: `{"status_code":"200","gross_amount":"250000.00",` +
				`"transaction_status":"settlement","signature_key":"abc"}`,
			wantErr: models.ErrMalformedPayload,
		},
		{
			name: "missing signature",
			raw: `{"order_id":"17556163210001","status_code":"200","gross_amount":"250000.00",` +
				`"transaction_status":"settlement"}`,
			wantErr: models.ErrMalformedPayload,
		},
		{
			name: "unknown transaction status",
			raw: `{"order_id":"17556163210001","status_code":"200","gross_amount":"250000.00",` +
				`"transaction_status":"refunded","signature_key":"abc"}`,
			wantErr: models.ErrMalformedPayload,
		},
		{
			name: "unknown fraud status",
			raw: `{"order_id":"17556163210001","status_code":"200","gross_amount":"250000.00",` +
				`"transaction_status":"capture","fraud_status":"maybe","signature_key":"abc"}`,
			wantErr: models.ErrMalformedPayload,
		},
		{
			name: "non-zero fraction digits",
			raw: `{"order_id":"17556163210001","status_code":"200","gross_amount":"250000.50",` +
				`"transaction_status":"settlement","signature_key":"abc"}`,
			wantErr: models.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNotification([]byte(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "17556163210001", n.OrderID)
		})
	}
}

func TestParseGrossAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "whole", in: "250000", want: 250000},
		{name: "two zero fraction digits", in: "250000.00", want: 250000},
		{name: "one zero fraction digit", in: "250000.0", want: 250000},
		{name: "zero", in: "0.00", want: 0},
		{name: "empty", in: "", wantErr: true},
		{name: "bare point", in: "250000.", wantErr: true},
		{name: "leading point", in: ".00", wantErr: true},
		{name: "non-zero cents", in: "250000.01", wantErr: true},
		{name: "three fraction digits", in: "250000.000", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "scientific", in: "2.5e5", wantErr: true},
		{name: "thousands separator", in: "250,000.00", wantErr: true},
		{name: "overflow", in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGrossAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatGrossAmountRoundTrips(t *testing.T) {
	for _, amount := range []int64{0, 1, 250000, 1<<40 + 7} {
		got, err := ParseGrossAmount(FormatGrossAmount(amount))
		require.NoError(t, err)
		assert.Equal(t, amount, got)
	}
}
