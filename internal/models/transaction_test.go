package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeForState(t *testing.T) {
	tests := []struct {
		name     string
		state    PaymentState
		wantType TransactionType
		wantErr  error
	}{
		{"pending maps to intent", PaymentStatePending, TransactionTypeIntent, nil},
		{"authorized maps to intent", PaymentStateAuthorized, TransactionTypeIntent, nil},
		{"captured maps to capture", PaymentStateCaptured, TransactionTypeCapture, nil},
		{"refunded maps to refund", PaymentStateRefunded, TransactionTypeRefund, nil},
		{"rejected is unmapped", PaymentStateRejected, "", ErrUnmappedState},
		{"canceled is unmapped", PaymentStateCanceled, "", ErrUnmappedState},
		{"unknown state is unmapped", PaymentState("initiated"), "", ErrUnmappedState},
		{"empty state is unmapped", PaymentState(""), "", ErrUnmappedState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeForState(tt.state)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantType, got)
		})
	}
}

func TestTypeForEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		wantType TransactionType
		wantErr  error
	}{
		{"authorized maps to intent", EventPaymentAuthorized, TransactionTypeIntent, nil},
		{"captured maps to capture", EventPaymentCaptured, TransactionTypeCapture, nil},
		{"refunded event is unmapped", "payment.refunded", "", ErrUnmappedEvent},
		{"unknown event is unmapped", "payment.exploded", "", ErrUnmappedEvent},
		{"empty event is unmapped", "", "", ErrUnmappedEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeForEvent(tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantType, got)
		})
	}
}

func TestOrderPlaced(t *testing.T) {
	order := &Order{}
	assert.False(t, order.Placed())

	placedAt := order.CreatedAt
	order.PlacedAt = &placedAt
	assert.True(t, order.Placed())
}
