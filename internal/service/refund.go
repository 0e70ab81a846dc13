package service

import (
	"context"
	"errors"

	"github.com/gamevault/pensopay/internal/repository"
	"github.com/google/uuid"
)

// Refund refunds a captured payment through the gateway and, on success,
// appends a refund entry linked to the originating transaction. The ledger is
// never edited: a refund is a new entry, not a correction of history.
func (s *LifecycleService) Refund(ctx context.Context, transactionID uuid.UUID, amount int64, notes string) (*RefundResult, error) {
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

	resp, err := s.gateway.Refund(ctx, parent.Reference, amount)
	if err != nil {
		s.logger.Warn("gateway refund failed",
			"transaction_id", transactionID,
			"reference", parent.Reference,
			"error", err,
		)
		return &RefundResult{
			Success: false,
			Code:    ErrCodeTransportFailure,
			Message: "gateway refund failed",
		}, nil
	}

	if !resp.IsSuccessful() {
		return &RefundResult{
			Success: false,
			Code:    ErrCodeGatewayRejected,
			Message: "gateway declined the refund",
		}, nil
	}

	entry, err := s.recordChild(ctx, parent, resp, notes)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == ErrCodeAlreadyRecorded {
			return &RefundResult{Success: false, Code: svcErr.Code, Message: svcErr.Message}, nil
		}
		return nil, err
	}

	s.logger.Info("refund recorded",
		"transaction_id", entry.ID,
		"parent_transaction_id", transactionID,
		"amount", amount,
	)

	return &RefundResult{Success: true, Transaction: entry}, nil
}
