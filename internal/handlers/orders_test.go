package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/service"
	"github.com/gamevault/pensopay/internal/service/mocks"
)

func newListRequest(orderID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID+"/transactions", nil)
	req.SetPathValue("orderId", orderID)
	return req
}

func TestListOrderTransactions_Success(t *testing.T) {
	mockLedger := mocks.NewMockLedgerReader(t)
	handler := NewHandler(nil, mockLedger, nil, nil, testLogger())

	orderID := uuid.New()
	intentID := uuid.New()
	captureID := uuid.New()
	capturedAt := time.Now()

	mockLedger.On("ListTransactions", mock.Anything, orderID).
		Return([]*models.Transaction{
			{
				ID:        intentID,
				OrderID:   orderID,
				Type:      models.TransactionTypeIntent,
				Driver:    models.Driver,
				Reference: "pay_1",
				Status:    "pending",
				Amount:    2500,
				Success:   true,
				Meta:      map[string]any{"testmode": true},
			},
			{
				ID:                  captureID,
				OrderID:             orderID,
				ParentTransactionID: &intentID,
				Type:                models.TransactionTypeCapture,
				Driver:              models.Driver,
				Reference:           "pay_1",
				Status:              "captured",
				Amount:              2500,
				Success:             true,
				CapturedAt:          &capturedAt,
			},
		}, nil)

	rec := httptest.NewRecorder()
	handler.ListOrderTransactions(rec, newListRequest(orderID.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp transactionListResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Transactions, 2)

	intent := resp.Transactions[0]
	assert.Equal(t, intentID.String(), intent.ID)
	assert.Equal(t, "intent", intent.Type)
	assert.Equal(t, "pensopay", intent.Driver)
	assert.Empty(t, intent.ParentTransactionID)
	assert.Nil(t, intent.CapturedAt)

	capture := resp.Transactions[1]
	assert.Equal(t, captureID.String(), capture.ID)
	assert.Equal(t, "capture", capture.Type)
	assert.Equal(t, intentID.String(), capture.ParentTransactionID)
	assert.NotNil(t, capture.CapturedAt)
}

func TestListOrderTransactions_EmptyLedger(t *testing.T) {
	mockLedger := mocks.NewMockLedgerReader(t)
	handler := NewHandler(nil, mockLedger, nil, nil, testLogger())

	orderID := uuid.New()
	mockLedger.On("ListTransactions", mock.Anything, orderID).
		Return([]*models.Transaction{}, nil)

	rec := httptest.NewRecorder()
	handler.ListOrderTransactions(rec, newListRequest(orderID.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp transactionListResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Transactions)
}

func TestListOrderTransactions_OrderNotFound(t *testing.T) {
	mockLedger := mocks.NewMockLedgerReader(t)
	handler := NewHandler(nil, mockLedger, nil, nil, testLogger())

	mockLedger.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, &service.ServiceError{Code: service.ErrCodeOrderNotFound, Message: "order not found"})

	rec := httptest.NewRecorder()
	handler.ListOrderTransactions(rec, newListRequest(uuid.NewString()))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, service.ErrCodeOrderNotFound, resp.Error)
}

func TestListOrderTransactions_InvalidOrderID(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, testLogger())

	rec := httptest.NewRecorder()
	handler.ListOrderTransactions(rec, newListRequest("not-a-uuid"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
