package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/repository"
	"github.com/google/uuid"
)

// Capture captures an authorized payment through the gateway and, on success,
// appends a capture entry linked to the originating transaction. A gateway
// failure leaves the ledger untouched and comes back as an unsuccessful
// result.
func (s *LifecycleService) Capture(ctx context.Context, transactionID uuid.UUID, amount int64) (*CaptureResult, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	ledger := repository.NewTransactionRepository(s.db)
	parent, err := ledger.FindByID(ctx, transactionID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTransactionNotFound,
			Message: "transaction not found",
			Err:     err,
		}
	}

	resp, err := s.gateway.Capture(ctx, parent.Reference, amount)
	if err != nil {
		s.logger.Warn("gateway capture failed",
			"transaction_id", transactionID,
			"reference", parent.Reference,
			"error", err,
		)
		return &CaptureResult{
			Success: false,
			Code:    ErrCodeTransportFailure,
			Message: "gateway capture failed",
		}, nil
	}

	if !resp.IsSuccessful() {
		return &CaptureResult{
			Success: false,
			Code:    ErrCodeGatewayRejected,
			Message: "gateway declined the capture",
		}, nil
	}

	entry, err := s.recordChild(ctx, parent, resp, "")
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == ErrCodeAlreadyRecorded {
			return &CaptureResult{Success: false, Code: svcErr.Code, Message: svcErr.Message}, nil
		}
		return nil, err
	}

	s.logger.Info("capture recorded",
		"transaction_id", entry.ID,
		"parent_transaction_id", transactionID,
		"amount", amount,
	)

	return &CaptureResult{Success: true, Transaction: entry}, nil
}

// recordChild appends a ledger entry linked to parent, inside its own
// transaction with the parent's order row locked. Shared by capture and
// refund.
func (s *LifecycleService) recordChild(ctx context.Context, parent *models.Transaction, resp *gateway.PaymentResponse, notes string) (*models.Transaction, error) {
	entry, err := entryFromResponse(parent.OrderID, &parent.ID, resp, notes)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := s.performRecordChild(ctx, repository.NewOrderRepository(tx), repository.NewTransactionRepository(tx), entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return entry, nil
}

// performRecordChild contains the core child-entry recording logic
func (s *LifecycleService) performRecordChild(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	ledger repository.TransactionRepository,
	entry *models.Transaction,
) error {
	if _, err := orderRepo.FindByIDForUpdate(ctx, entry.OrderID); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to lock order: %v", err),
		}
	}

	if err := ledger.Append(ctx, entry); err != nil {
		if errors.Is(err, models.ErrDuplicateTransaction) {
			return &ServiceError{
				Code:    ErrCodeAlreadyRecorded,
				Message: "payment state already recorded",
				Err:     err,
			}
		}
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to append ledger entry: %v", err),
		}
	}

	return nil
}
