package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/repository"
	"github.com/google/uuid"
)

// WebhookService converts asynchronous gateway events into ledger entries.
// It never calls the gateway: it only records what the gateway already
// reported. Delivery is at-least-once and unordered relative to the
// synchronous path; the (reference, status) uniqueness in the ledger makes
// replays harmless.
type WebhookService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(database *db.DB, logger *slog.Logger) *WebhookService {
	return &WebhookService{
		db:     database,
		logger: logger,
	}
}

// Ingest records one webhook event. An event whose resource id matches no
// local transaction cannot be correlated and fails with ErrUnknownReference;
// an event name outside the known set fails with ErrUnmappedEvent. A replayed
// event is detected by the ledger's uniqueness constraint and ignored.
func (s *WebhookService) Ingest(ctx context.Context, event *gateway.WebhookEvent) error {
	entryType, err := models.TypeForEvent(event.Event)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeUnmappedEvent,
			Message: "webhook event outside the known set: " + event.Event,
			Err:     err,
		}
	}

	ledger := repository.NewTransactionRepository(s.db)
	prior, err := ledger.FindLatestByReference(ctx, event.Resource.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeUnknownReference,
				Message: "webhook references an unknown payment: " + event.Resource.ID,
				Err:     models.ErrUnknownReference,
			}
		}
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up transaction: %v", err),
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	duplicate, err := s.performIngest(ctx,
		repository.NewOrderRepository(tx),
		repository.NewTransactionRepository(tx),
		prior, event, entryType,
	)
	if err != nil {
		return err
	}
	if duplicate {
		// Already recorded by an earlier delivery; nothing to commit.
		s.logger.Info("webhook event already recorded",
			"event", event.Event,
			"reference", event.Resource.ID,
		)
		return nil
	}

	if err := tx.Commit(); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	s.logger.Info("webhook event recorded",
		"event", event.Event,
		"reference", event.Resource.ID,
		"order_id", prior.OrderID,
	)

	return nil
}

// performIngest contains the core ingestion logic: lock the order, flip
// placed_at for the first authorization-equivalent event, and append the
// entry. Returns true when the event was a duplicate delivery.
func (s *WebhookService) performIngest(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	ledger repository.TransactionRepository,
	prior *models.Transaction,
	event *gateway.WebhookEvent,
	entryType models.TransactionType,
) (bool, error) {
	order, err := orderRepo.FindByIDForUpdate(ctx, prior.OrderID)
	if err != nil {
		return false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to lock order: %v", err),
		}
	}

	if entryType == models.TransactionTypeIntent && !order.Placed() {
		if _, err := orderRepo.MarkPlaced(ctx, order.ID, time.Now()); err != nil {
			return false, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to mark order placed: %v", err),
			}
		}
	}

	entry := entryFromEvent(order.ID, prior.ID, event, entryType)
	if err := ledger.Append(ctx, entry); err != nil {
		if errors.Is(err, models.ErrDuplicateTransaction) {
			return true, nil
		}
		return false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to append ledger entry: %v", err),
		}
	}

	return false, nil
}

// entryFromEvent builds one ledger entry from a webhook payload. The event
// carries no URLs; card and customer metadata come from the nested
// payment_details object.
func entryFromEvent(orderID uuid.UUID, parentID uuid.UUID, event *gateway.WebhookEvent, entryType models.TransactionType) *models.Transaction {
	var capturedAt *time.Time
	if event.Event == models.EventPaymentCaptured {
		now := time.Now()
		capturedAt = &now
	}

	details := event.Resource.PaymentDetails

	return &models.Transaction{
		ID:                  uuid.New(),
		OrderID:             orderID,
		ParentTransactionID: &parentID,
		Success:             true,
		Type:                entryType,
		Driver:              models.Driver,
		Amount:              event.Resource.Amount,
		Reference:           event.Resource.ID,
		Status:              event.Event,
		CardType:            details.Brand,
		LastFour:            details.Last4,
		CapturedAt:          capturedAt,
		Meta: map[string]any{
			"captured":         event.Resource.Captured,
			"refunded":         event.Resource.Refunded,
			"autocapture":      event.Resource.Autocapture,
			"testmode":         event.Resource.Testmode,
			"card_bin":         details.Bin,
			"exp_year":         details.ExpYear,
			"exp_month":        details.ExpMonth,
			"3d_secure":        details.Is3DSecure,
			"card_country":     details.Country,
			"is_corporate":     details.Segment,
			"customer_country": details.CustomerCountry,
		},
		CreatedAt: time.Now(),
	}
}
