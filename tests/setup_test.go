//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gamevault/pensopay/internal/config"
	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/handlers"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/repository"
)

// fakeGateway is an in-process stand-in for the PensoPay API. Tests set
// CreateState to choose the state new payments come back in.
type fakeGateway struct {
	mu          sync.Mutex
	CreateState string
	nextID      int
	amounts     map[string]int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		CreateState: "pending",
		amounts:     map[string]int64{},
	}
}

func (f *fakeGateway) SetCreateState(state string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateState = state
}

type fakePayment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	State    string `json:"state"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Link     string `json:"link"`
	Captured bool   `json:"captured"`
	Refunded bool   `json:"refunded"`
	Testmode bool   `json:"testmode"`
}

func (f *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/payments":
		var req struct {
			OrderID  string `json:"order_id"`
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Testmode bool   `json:"testmode"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		f.nextID++
		id := fmt.Sprintf("fake_pay_%d", f.nextID)
		f.amounts[id] = req.Amount

		json.NewEncoder(w).Encode(fakePayment{
			ID:       id,
			OrderID:  req.OrderID,
			State:    f.CreateState,
			Amount:   req.Amount,
			Currency: req.Currency,
			Link:     "https://fake-checkout.example/" + id,
			Testmode: req.Testmode,
		})

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/capture"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/payments/"), "/capture")
		json.NewEncoder(w).Encode(fakePayment{
			ID:       id,
			State:    "captured",
			Amount:   f.amounts[id],
			Captured: true,
		})

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/refund"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/payments/"), "/refund")
		json.NewEncoder(w).Encode(fakePayment{
			ID:       id,
			State:    "refunded",
			Amount:   f.amounts[id],
			Refunded: true,
		})

	default:
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	}
}

// TestServer wraps the HTTP test server, the fake gateway and the database.
type TestServer struct {
	Server   *httptest.Server
	Gateway  *fakeGateway
	Database *db.DB
	t        *testing.T
}

// SetupTest creates a new test server with a clean database state.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	runMigrations(t, database)
	resetTestData(t, database)

	fake := newFakeGateway()
	gatewayServer := httptest.NewServer(fake)
	t.Cleanup(gatewayServer.Close)

	cfg.Gateway.BaseURL = gatewayServer.URL
	cfg.Gateway.APIKey = "test-api-key"
	gatewayClient := gateway.NewClient(&cfg.Gateway, logger)

	router := handlers.NewRouterWithGateway(database, cfg, gatewayClient, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Gateway:  fake,
		Database: database,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "internal", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	_, err = database.ExecContext(context.Background(), string(sqlBytes))
	if err != nil {
		t.Logf("migration execution completed (tables may already exist)")
	}
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions CASCADE;
		TRUNCATE TABLE orders CASCADE;
		TRUNCATE TABLE carts CASCADE;
		TRUNCATE TABLE idempotency_keys CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")
}

// SeedCart creates a cart ready for checkout.
func (ts *TestServer) SeedCart(t *testing.T, reference string, totalAmount int64, currency string) *models.Cart {
	t.Helper()

	cart, err := repository.NewCartRepository(ts.Database).Create(context.Background(), reference, totalAmount, currency)
	require.NoError(t, err, "failed to seed cart")
	return cart
}

func (ts *TestServer) postJSON(t *testing.T, path string, body map[string]any, idempotencyKey string) *http.Response {
	t.Helper()

	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, ts.URL(path), bytes.NewReader(jsonBody))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// Authorize starts checkout for a cart.
func (ts *TestServer) Authorize(t *testing.T, cartID string, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.postJSON(t, "/api/v1/checkout/authorize", map[string]any{
		"cart_id":      cartID,
		"success_url":  "https://shop.example/success",
		"cancel_url":   "https://shop.example/cancel",
		"callback_url": "https://shop.example/callback",
	}, idempotencyKey)
}

// Capture captures against an intent transaction.
func (ts *TestServer) Capture(t *testing.T, transactionID string, amount int64, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.postJSON(t, "/api/v1/transactions/"+transactionID+"/capture", map[string]any{
		"amount": amount,
	}, idempotencyKey)
}

// Refund refunds against a capture transaction.
func (ts *TestServer) Refund(t *testing.T, transactionID string, amount int64, notes, idempotencyKey string) *http.Response {
	t.Helper()

	body := map[string]any{"amount": amount}
	if notes != "" {
		body["notes"] = notes
	}
	return ts.postJSON(t, "/api/v1/transactions/"+transactionID+"/refund", body, idempotencyKey)
}

// DeliverWebhook posts a gateway event to the webhook endpoint.
func (ts *TestServer) DeliverWebhook(t *testing.T, event string, reference string, details map[string]any) *http.Response {
	t.Helper()

	resource := map[string]any{"id": reference}
	if details != nil {
		resource["payment_details"] = details
	}
	return ts.postJSON(t, "/api/v1/webhooks/pensopay", map[string]any{
		"event":    event,
		"resource": resource,
	}, "")
}

// ListTransactions fetches the order's ledger.
func (ts *TestServer) ListTransactions(t *testing.T, orderID string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL("/api/v1/orders/" + orderID + "/transactions"))
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
