package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/koperasi/coopmart/internal/gateway"
	"github.com/koperasi/coopmart/internal/handler/http/mocks"
	"github.com/koperasi/coopmart/internal/middleware"
	"github.com/koperasi/coopmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentRequest(t *testing.T, num, body string) *http.Request {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/api/orders/"+num+"/payment", strings.NewReader(body))
	request = request.WithContext(middleware.WithMemberID(request.Context(), 7))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("number", num)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, rctx))
}

func TestPaymentHandler(t *testing.T) {
	body := `{"gross_amount":250000,"customer_details":{"first_name":"Budi","email":"budi@example.com"}}`

	tests := []struct {
		name       string
		session    *models.PaymentSession
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name: "token issued",
			session: &models.PaymentSession{
				Token:       "tok-1",
				RedirectURL: "https://pay.example/tok-1",
				ExpiresAt:   time.Now().Add(time.Hour),
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"token":"tok-1","redirect_url":"https://pay.example/tok-1"}`,
		},
		{
			name:       "invalid order number",
			svcErr:     models.ErrInvalidOrderNumber,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "order not found",
			svcErr:     models.ErrDataNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "order not pending",
			svcErr:     models.ErrOrderNotPending,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "amount mismatch",
			svcErr:     models.ErrAmountMismatch,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "gateway unavailable",
			svcErr:     models.ErrGatewayUnavailable,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "internal error",
			svcErr:     models.ErrInternalError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockPaymentService(ctrl)
			svc.EXPECT().
				IssueToken(gomock.Any(), uint64(7), "79927398713", int64(250000), gateway.CustomerDetails{
					FirstName: "Budi",
					Email:     "budi@example.com",
				}).
				Return(tt.session, tt.svcErr)

			w := httptest.NewRecorder()
			NewPaymentHandler(svc).IssueToken().ServeHTTP(w, newPaymentRequest(t, "79927398713", body))

			result := w.Result()
			defer result.Body.Close()

			assert.Equal(t, tt.wantStatus, result.StatusCode)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestPaymentHandlerUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)

	request := httptest.NewRequest(http.MethodPost, "/api/orders/79927398713/payment", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	NewPaymentHandler(svc).IssueToken().ServeHTTP(w, request)

	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestPaymentHandlerBadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)

	w := httptest.NewRecorder()
	NewPaymentHandler(svc).IssueToken().ServeHTTP(w, newPaymentRequest(t, "79927398713", `{"gross_amount":`))

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
