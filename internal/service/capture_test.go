package service

import (
	"context"
	"testing"

	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleService_Capture_InvalidAmount(t *testing.T) {
	service := newTestLifecycleService(false)

	result, err := service.Capture(context.Background(), uuid.New(), 0)

	assert.Nil(t, result)
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, ErrCodeInvalidAmount, svcErr.Code)
	}
}

func TestLifecycleService_Refund_InvalidAmount(t *testing.T) {
	service := newTestLifecycleService(false)

	result, err := service.Refund(context.Background(), uuid.New(), -100, "")

	assert.Nil(t, result)
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, ErrCodeInvalidAmount, svcErr.Code)
	}
}

func TestLifecycleService_PerformRecordChild(t *testing.T) {
	t.Run("appends child entry under locked order", func(t *testing.T) {
		mockOrderRepo := mocks.NewMockOrderRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLifecycleService(false)
		ctx := context.Background()

		orderID := uuid.New()
		parentID := uuid.New()
		resp := gateway.NewPaymentResponse(gateway.PaymentFields{
			ID:       "abc123",
			State:    models.PaymentStateCaptured,
			Amount:   5000,
			Captured: true,
		})
		entry, err := entryFromResponse(orderID, &parentID, resp, "")
		assert.NoError(t, err)

		mockOrderRepo.On("FindByIDForUpdate", ctx, orderID).Return(&models.Order{ID: orderID}, nil)
		mockTxRepo.On("Append", ctx, entry).Return(nil)

		err = service.performRecordChild(ctx, mockOrderRepo, mockTxRepo, entry)

		assert.NoError(t, err)
	})

	t.Run("duplicate entry surfaces already recorded", func(t *testing.T) {
		mockOrderRepo := mocks.NewMockOrderRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLifecycleService(false)
		ctx := context.Background()

		orderID := uuid.New()
		parentID := uuid.New()
		resp := gateway.NewPaymentResponse(gateway.PaymentFields{
			ID:     "abc123",
			State:  models.PaymentStateCaptured,
			Amount: 5000,
		})
		entry, err := entryFromResponse(orderID, &parentID, resp, "")
		assert.NoError(t, err)

		mockOrderRepo.On("FindByIDForUpdate", ctx, orderID).Return(&models.Order{ID: orderID}, nil)
		mockTxRepo.On("Append", ctx, entry).Return(models.ErrDuplicateTransaction)

		err = service.performRecordChild(ctx, mockOrderRepo, mockTxRepo, entry)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAlreadyRecorded, svcErr.Code)
		}
	})
}
