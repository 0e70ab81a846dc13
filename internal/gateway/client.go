// Package gateway implements a typed client for the PensoPay payments API
// and the typed views over its payloads.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gamevault/pensopay/internal/config"
	"github.com/gamevault/pensopay/internal/models"
)

// testReferenceSuffix is appended to order references in test mode. The
// gateway requires at least 4 characters in order_id, so the suffix also
// guards against too-short references.
const testReferenceSuffix = "_test"

// Client issues the outbound PensoPay API operations. Each operation is a
// single HTTP exchange; there is no retry or backoff, a transport failure
// propagates to the caller.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	apiKey     string
	testmode   bool
}

// NewClient creates a Client from gateway configuration
func NewClient(cfg *config.GatewayConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		testmode:   cfg.Testmode,
	}
}

// StatusError is returned when the gateway answers with a non-2xx status
type StatusError struct {
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

type createPaymentRequest struct {
	OrderID     string `json:"order_id"`
	Currency    string `json:"currency"`
	SuccessURL  string `json:"success_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
	Amount      int64  `json:"amount"`
	Testmode    bool   `json:"testmode"`
	Autocapture bool   `json:"autocapture"`
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

// CreatePayment creates a new payment for the order in the pending state.
// Once the customer has paid, the gateway moves it to authorized and delivers
// a callback to callbackURL.
func (c *Client) CreatePayment(ctx context.Context, order *models.Order, successURL, cancelURL, callbackURL string) (*PaymentResponse, error) {
	reference := order.Reference
	if c.testmode {
		reference += testReferenceSuffix
	}

	req := createPaymentRequest{
		OrderID:     reference,
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		Testmode:    c.testmode,
		Autocapture: false,
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		CallbackURL: callbackURL,
	}

	var payload paymentPayload
	if err := c.do(ctx, http.MethodPost, "/payments", nil, req, &payload); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return newPaymentResponse(payload, successURL, cancelURL, callbackURL), nil
}

// Capture captures an authorized payment by its gateway reference
func (c *Client) Capture(ctx context.Context, reference string, amount int64) (*PaymentResponse, error) {
	path := fmt.Sprintf("/payments/%s/capture", url.PathEscape(reference))

	var payload paymentPayload
	if err := c.do(ctx, http.MethodPost, path, nil, amountRequest{Amount: amount}, &payload); err != nil {
		return nil, fmt.Errorf("failed to capture payment %s: %w", reference, err)
	}

	return newPaymentResponse(payload, "", "", ""), nil
}

// Refund refunds a captured payment by its gateway reference
func (c *Client) Refund(ctx context.Context, reference string, amount int64) (*PaymentResponse, error) {
	path := fmt.Sprintf("/payments/%s/refund", url.PathEscape(reference))

	var payload paymentPayload
	if err := c.do(ctx, http.MethodPost, path, nil, amountRequest{Amount: amount}, &payload); err != nil {
		return nil, fmt.Errorf("failed to refund payment %s: %w", reference, err)
	}

	return newPaymentResponse(payload, "", "", ""), nil
}

// GetPayment retrieves a single payment by id
func (c *Client) GetPayment(ctx context.Context, id string) (*PaymentResponse, error) {
	query := url.Values{"payment": []string{id}}

	var payload paymentPayload
	if err := c.do(ctx, http.MethodGet, "/payments", query, nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", id, err)
	}

	return newPaymentResponse(payload, "", "", ""), nil
}

// ListPaymentsParams filters a payment listing. Zero values are omitted from
// the query, except PerPage and Page which fall back to the gateway defaults.
type ListPaymentsParams struct {
	DateFrom time.Time
	DateTo   time.Time
	OrderID  string
	Currency string
	PerPage  int
	Page     int
}

// ListPayments returns one page of payments matching the params
func (c *Client) ListPayments(ctx context.Context, params ListPaymentsParams) ([]*PaymentResponse, error) {
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = 15
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	query := url.Values{
		"per_page": []string{strconv.Itoa(perPage)},
		"page":     []string{strconv.Itoa(page)},
	}
	if params.OrderID != "" {
		query.Set("order_id", params.OrderID)
	}
	if params.Currency != "" {
		query.Set("currency", params.Currency)
	}
	if !params.DateFrom.IsZero() {
		query.Set("date_from", params.DateFrom.Format(time.RFC3339))
	}
	if !params.DateTo.IsZero() {
		query.Set("date_to", params.DateTo.Format(time.RFC3339))
	}

	var payloads []paymentPayload
	if err := c.do(ctx, http.MethodGet, "/payments", query, nil, &payloads); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]*PaymentResponse, 0, len(payloads))
	for _, payload := range payloads {
		responses = append(responses, newPaymentResponse(payload, "", "", ""))
	}

	return responses, nil
}

// do performs one JSON exchange against the gateway
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck // nothing useful to do on close failure
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("gateway request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}

	return nil
}
