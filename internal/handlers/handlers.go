// Package handlers implements the HTTP surface of the payment reconciliation
// service.
package handlers

import (
	"log/slog"

	"github.com/gamevault/pensopay/internal/service"
)

// Handler holds the injected service dependencies for all endpoints
type Handler struct {
	lifecycle     service.Lifecycle
	ledger        service.LedgerReader
	ingestor      service.WebhookIngestor
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	lifecycle service.Lifecycle,
	ledger service.LedgerReader,
	ingestor service.WebhookIngestor,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		lifecycle:     lifecycle,
		ledger:        ledger,
		ingestor:      ingestor,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
