package service

import (
	"context"

	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// GatewayClient is the outbound capability the lifecycle service needs from
// the gateway. Concrete gateway variants implement the same contract as
// siblings; *gateway.Client is the PensoPay one.
type GatewayClient interface {
	CreatePayment(ctx context.Context, order *models.Order, successURL, cancelURL, callbackURL string) (*gateway.PaymentResponse, error)
	Capture(ctx context.Context, reference string, amount int64) (*gateway.PaymentResponse, error)
	Refund(ctx context.Context, reference string, amount int64) (*gateway.PaymentResponse, error)
}

// Lifecycle drives the authorize / capture / refund flow against the gateway
// and keeps the local order and ledger in sync.
type Lifecycle interface {
	Authorize(ctx context.Context, cartID uuid.UUID, urls CheckoutURLs) (*AuthorizeResult, error)
	Capture(ctx context.Context, transactionID uuid.UUID, amount int64) (*CaptureResult, error)
	Refund(ctx context.Context, transactionID uuid.UUID, amount int64, notes string) (*RefundResult, error)
}

// WebhookIngestor records asynchronous gateway events into the ledger,
// independently of the synchronous lifecycle path.
type WebhookIngestor interface {
	Ingest(ctx context.Context, event *gateway.WebhookEvent) error
}

// LedgerReader exposes read access to an order's transaction history
type LedgerReader interface {
	ListTransactions(ctx context.Context, orderID uuid.UUID) ([]*models.Transaction, error)
}

// Ensure concrete types implement interfaces
var (
	_ GatewayClient   = (*gateway.Client)(nil)
	_ Lifecycle       = (*LifecycleService)(nil)
	_ LedgerReader    = (*LifecycleService)(nil)
	_ WebhookIngestor = (*WebhookService)(nil)
)
