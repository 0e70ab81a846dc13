package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gamevault/pensopay/internal/api"
	"github.com/gamevault/pensopay/internal/config"
	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/middleware"
	"github.com/gamevault/pensopay/internal/repository"
	"github.com/gamevault/pensopay/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	gatewayClient := gateway.NewClient(&cfg.Gateway, logger)
	return NewRouterWithGateway(database, cfg, gatewayClient, logger)
}

// NewRouterWithGateway is NewRouter with an injected gateway client, used by
// tests to point the service at a fake gateway.
func NewRouterWithGateway(
	database *db.DB,
	cfg *config.Config,
	gatewayClient service.GatewayClient,
	logger *slog.Logger,
) http.Handler {
	lifecycle := service.NewLifecycleService(database, gatewayClient, cfg.Gateway.Testmode, logger)
	ingestor := service.NewWebhookService(database, logger)

	handler := NewHandler(lifecycle, lifecycle, ingestor, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /api/v1/checkout/authorize", handler.Authorize)
	mux.HandleFunc("POST /api/v1/transactions/{transactionId}/capture", handler.Capture)
	mux.HandleFunc("POST /api/v1/transactions/{transactionId}/refund", handler.Refund)
	mux.HandleFunc("GET /api/v1/orders/{orderId}/transactions", handler.ListOrderTransactions)
	mux.HandleFunc("POST /api/v1/webhooks/pensopay", handler.Webhook)

	var finalHandler http.Handler = mux

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	return finalHandler
}
