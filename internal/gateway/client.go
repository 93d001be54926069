package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/koperasi/coopmart/internal/models"
)

// payment sessions stay redeemable for this long after issuance
const TokenTTL = 24 * time.Hour

// Client is HTTP client for the payment gateway's session API.
type Client struct {
	client    *http.Client
	baseURL   string
	serverKey string
	finishURL string
}

// NewClient creates new gateway Client instance
func NewClient(baseURL, serverKey, finishURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		serverKey: serverKey,
		finishURL: finishURL,
	}
}

// CustomerDetails is the payer identity forwarded to the gateway.
type CustomerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// ItemDetails is one order line forwarded to the gateway.
type ItemDetails struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// TransactionRequest asks the gateway for a payment session.
type TransactionRequest struct {
	OrderNumber string
	GrossAmount int64
	Customer    CustomerDetails
	Items       []ItemDetails
}

type transactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type expiry struct {
	Unit     string `json:"unit"`
	Duration int    `json:"duration"`
}

type callbacks struct {
	Finish string `json:"finish,omitempty"`
}

type createTransactionRequest struct {
	TransactionDetails transactionDetails `json:"transaction_details"`
	CustomerDetails    CustomerDetails    `json:"customer_details"`
	ItemDetails        []ItemDetails      `json:"item_details,omitempty"`
	Expiry             expiry             `json:"expiry"`
	Callbacks          *callbacks         `json:"callbacks,omitempty"`
}

type createTransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreateTransaction mints a payment session for one pending order.
// Connectivity and gateway-side failures surface as ErrGatewayUnavailable so
// callers can retry without any local state change.
func (c *Client) CreateTransaction(ctx context.Context, req TransactionRequest) (*models.PaymentSession, error) {
	u, err := url.JoinPath(c.baseURL, "snap", "v1", "transactions")
	if err != nil {
		return nil, err
	}

	body := createTransactionRequest{
		TransactionDetails: transactionDetails{
			OrderID:     req.OrderNumber,
			GrossAmount: req.GrossAmount,
		},
		CustomerDetails: req.Customer,
		ItemDetails:     req.Items,
		Expiry: expiry{
			Unit:     "hour",
			Duration: int(TokenTTL / time.Hour),
		},
	}
	if c.finishURL != "" {
		body.Callbacks = &callbacks{Finish: c.finishURL}
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.serverKey+":")))

	resp, err := c.client.Do(httpReq)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, models.ErrGatewayUnavailable
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var ctResp createTransactionResponse
		if err := json.NewDecoder(resp.Body).Decode(&ctResp); err != nil {
			return nil, models.ErrGatewayUnavailable
		}
		if ctResp.Token == "" {
			return nil, models.ErrGatewayUnavailable
		}
		return &models.PaymentSession{
			Token:       ctResp.Token,
			RedirectURL: ctResp.RedirectURL,
			ExpiresAt:   time.Now().Add(TokenTTL),
		}, nil
	case http.StatusUnauthorized, http.StatusBadRequest:
		// our request is broken, retrying will not help
		return nil, models.ErrInternalError
	default:
		return nil, models.ErrGatewayUnavailable
	}
}
