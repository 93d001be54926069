package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/koperasi/coopmart/internal/models"
)

// the gateway sends compact JSON; anything bigger is not a notification
const maxNotificationBytes = 1 << 20

type WebhookService interface {
	// HandleNotification verifies, records and applies one gateway notification
	HandleNotification(ctx context.Context, raw []byte) error
}

// WebhookHandler represents HTTP handler for gateway notifications
type WebhookHandler struct {
	svc WebhookService
}

// NewWebhookHandler creates new WebhookHandler instance
func NewWebhookHandler(svc WebhookService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// Notify receives a gateway status notification
// 200 — event recorded, acknowledgement suppresses gateway retries;
// 400 — malformed payload;
// 403 — signature verification failed;
// 404 — authentic notification for an unknown order (still recorded);
// 500 — internal error, the gateway will retry.
func (wh *WebhookHandler) Notify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxNotificationBytes))
		if err != nil || len(raw) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := wh.svc.HandleNotification(r.Context(), raw); err != nil {
			switch {
			case errors.Is(err, models.ErrMalformedPayload):
				http.Error(w, "bad request", http.StatusBadRequest)
			case errors.Is(err, models.ErrInvalidSignature):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrAmountMismatch):
				http.Error(w, "amount mismatch", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			return
		}
	}
}
