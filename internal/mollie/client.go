package mollie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream_unavailable")
	ErrOrderNotFound       = errors.New("mollie_order_not_found")
)

// Client is the subset of the Mollie Orders API this service consumes.
type Client interface {
	GetOrder(ctx context.Context, orderID string) (*OrderSnapshot, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderSnapshot, error)
}

// OrderRequest is the payload for checkout-time order creation.
type OrderRequest struct {
	Amount      Amount
	OrderNumber string
	RedirectURL string
	WebhookURL  string
	Method      string
	Metadata    OrderMetadata
}

type HTTPClient struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	log       *zap.Logger
}

type Options struct {
	BaseURL string
	APIKey  string
	Version string
	Timeout time.Duration
}

func NewHTTPClient(opts Options, log *zap.Logger) *HTTPClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		apiKey:    opts.APIKey,
		userAgent: "Plentymarkets/" + opts.Version,
		http:      &http.Client{Timeout: timeout},
		log:       log.Named("mollie.client"),
	}
}

// wire format: Mollie serializes amounts as {"value":"10.00","currency":"EUR"}.
type wireAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type wireOrder struct {
	ID             string        `json:"id"`
	Status         string        `json:"status"`
	Metadata       OrderMetadata `json:"metadata"`
	Amount         *wireAmount   `json:"amount"`
	AmountRefunded *wireAmount   `json:"amountRefunded"`
	PaidAt         *time.Time    `json:"paidAt"`
}

type wireError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (c *HTTPClient) GetOrder(ctx context.Context, orderID string) (*OrderSnapshot, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, fmt.Errorf("%w: empty order id", ErrUpstreamUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/orders/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	body, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if status < 200 || status >= 300 {
		return nil, apiError(status, body)
	}

	return decodeOrder(body)
}

func (c *HTTPClient) CreateOrder(ctx context.Context, orderReq OrderRequest) (*OrderSnapshot, error) {
	payload := map[string]any{
		"amount": wireAmount{
			Currency: orderReq.Amount.Currency,
			Value:    orderReq.Amount.Value.StringFixed(2),
		},
		"orderNumber": orderReq.OrderNumber,
		"redirectUrl": orderReq.RedirectURL,
		"webhookUrl":  orderReq.WebhookURL,
		"metadata":    orderReq.Metadata,
	}
	if orderReq.Method != "" {
		payload["method"] = orderReq.Method
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/orders", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, apiError(status, body)
	}

	return decodeOrder(body)
}

func (c *HTTPClient) do(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("mollie request failed", zap.String("url", req.URL.Path), zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return body, resp.StatusCode, nil
}

func apiError(status int, body []byte) error {
	var detail wireError
	if err := json.Unmarshal(body, &detail); err == nil && detail.Title != "" {
		return fmt.Errorf("%w: %d %s: %s", ErrUpstreamUnavailable, status, detail.Title, detail.Detail)
	}
	return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, status)
}

func decodeOrder(body []byte) (*OrderSnapshot, error) {
	var order wireOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("%w: decode order: %v", ErrUpstreamUnavailable, err)
	}
	if strings.TrimSpace(order.ID) == "" {
		return nil, fmt.Errorf("%w: order without id", ErrUpstreamUnavailable)
	}

	snapshot := &OrderSnapshot{
		ID:       order.ID,
		Status:   order.Status,
		Metadata: order.Metadata,
		PaidAt:   order.PaidAt,
	}

	amount, err := parseAmount(order.Amount)
	if err != nil {
		return nil, err
	}
	snapshot.Amount = amount

	refunded, err := parseAmount(order.AmountRefunded)
	if err != nil {
		return nil, err
	}
	snapshot.AmountRefunded = refunded

	return snapshot, nil
}

func parseAmount(raw *wireAmount) (Amount, error) {
	if raw == nil {
		return Amount{Value: decimal.Zero}, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(raw.Value))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: amount %q: %v", ErrUpstreamUnavailable, raw.Value, err)
	}
	return Amount{Currency: strings.ToUpper(raw.Currency), Value: value}, nil
}
