// Package service implements the payment lifecycle reconciliation engine:
// the synchronous authorize/capture/refund flow and the asynchronous webhook
// ingestion that both append to the order transaction ledger.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/repository"
	"github.com/google/uuid"
)

// LifecycleService orchestrates payment operations against the gateway and
// records their outcomes in the append-only ledger. It is the synchronous
// producer; WebhookService is the asynchronous one.
type LifecycleService struct {
	db       *db.DB
	gateway  GatewayClient
	logger   *slog.Logger
	testmode bool
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(database *db.DB, gatewayClient GatewayClient, testmode bool, logger *slog.Logger) *LifecycleService {
	return &LifecycleService{
		db:       database,
		gateway:  gatewayClient,
		logger:   logger,
		testmode: testmode,
	}
}

// ListTransactions returns the order's full ledger history, oldest first
func (s *LifecycleService) ListTransactions(ctx context.Context, orderID uuid.UUID) ([]*models.Transaction, error) {
	orderRepo := repository.NewOrderRepository(s.db)
	if _, err := orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeOrderNotFound,
			Message: "order not found",
			Err:     err,
		}
	}

	ledger := repository.NewTransactionRepository(s.db)
	txns, err := ledger.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list transactions: %v", err),
		}
	}

	return txns, nil
}

// entryFromResponse builds one ledger entry from a gateway payment response.
// The entry type is derived from the gateway state; an unmapped state is a
// defect surfaced to the caller, never a silent default.
func entryFromResponse(orderID uuid.UUID, parentID *uuid.UUID, resp *gateway.PaymentResponse, notes string) (*models.Transaction, error) {
	entryType, err := models.TypeForState(resp.State())
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeUnmappedState,
			Message: "gateway returned a state outside the known set: " + string(resp.State()),
			Err:     err,
		}
	}

	var capturedAt *time.Time
	if resp.IsSuccessful() && resp.State() == models.PaymentStateCaptured {
		now := time.Now()
		capturedAt = &now
	}

	return &models.Transaction{
		ID:                  uuid.New(),
		OrderID:             orderID,
		ParentTransactionID: parentID,
		Success:             resp.IsSuccessful(),
		Type:                entryType,
		Driver:              models.Driver,
		Amount:              resp.Amount(),
		Reference:           resp.ID(),
		Status:              string(resp.State()),
		Notes:               notes,
		CardType:            models.Driver,
		CapturedAt:          capturedAt,
		Meta: map[string]any{
			"urls": map[string]any{
				"link":         resp.Link(),
				"callback_url": resp.CallbackURL(),
				"success_url":  resp.SuccessURL(),
				"cancel_url":   resp.CancelURL(),
			},
			"captured":           resp.Captured(),
			"refunded":           resp.Refunded(),
			"pensopay_reference": resp.Reference(),
			"autocapture":        resp.IsAutoCapture(),
			"testmode":           resp.IsTestMode(),
			"facilitator":        resp.Facilitator(),
		},
		CreatedAt: time.Now(),
	}, nil
}
