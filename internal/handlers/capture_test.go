package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/service"
	"github.com/gamevault/pensopay/internal/service/mocks"
)

func newCaptureRequest(transactionID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/"+transactionID+"/capture", strings.NewReader(body))
	req.SetPathValue("transactionId", transactionID)
	return req
}

func TestCapture_Success(t *testing.T) {
	mockLifecycle := mocks.NewMockLifecycle(t)
	handler := NewHandler(mockLifecycle, nil, nil, nil, testLogger())

	intentID := uuid.New()
	captureID := uuid.New()

	mockLifecycle.On("Capture", mock.Anything, intentID, int64(2500)).
		Return(&service.CaptureResult{
			Success:     true,
			Transaction: &models.Transaction{ID: captureID, Type: models.TransactionTypeCapture},
		}, nil)

	rec := httptest.NewRecorder()
	handler.Capture(rec, newCaptureRequest(intentID.String(), `{"amount":2500}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp operationResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, captureID.String(), resp.TransactionID)
}

func TestCapture_GatewayRejected(t *testing.T) {
	mockLifecycle := mocks.NewMockLifecycle(t)
	handler := NewHandler(mockLifecycle, nil, nil, nil, testLogger())

	intentID := uuid.New()
	mockLifecycle.On("Capture", mock.Anything, intentID, int64(2500)).
		Return(&service.CaptureResult{
			Success: false,
			Code:    service.ErrCodeGatewayRejected,
			Message: "capture rejected by gateway",
		}, nil)

	rec := httptest.NewRecorder()
	handler.Capture(rec, newCaptureRequest(intentID.String(), `{"amount":2500}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp operationResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, service.ErrCodeGatewayRejected, resp.Code)
}

func TestCapture_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     *service.ServiceError
		expectedStatus int
	}{
		{"transaction not found", &service.ServiceError{Code: service.ErrCodeTransactionNotFound, Message: "transaction not found"}, http.StatusNotFound},
		{"invalid amount", &service.ServiceError{Code: service.ErrCodeInvalidAmount, Message: "amount must be positive"}, http.StatusBadRequest},
		{"already recorded", &service.ServiceError{Code: service.ErrCodeAlreadyRecorded, Message: "capture already recorded"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLifecycle := mocks.NewMockLifecycle(t)
			handler := NewHandler(mockLifecycle, nil, nil, nil, testLogger())

			mockLifecycle.On("Capture", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.serviceErr)

			rec := httptest.NewRecorder()
			handler.Capture(rec, newCaptureRequest(uuid.NewString(), `{"amount":2500}`))

			require.Equal(t, tt.expectedStatus, rec.Code)

			var resp errorResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.serviceErr.Code, resp.Error)
		})
	}
}

func TestCapture_InvalidTransactionID(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, testLogger())

	rec := httptest.NewRecorder()
	handler.Capture(rec, newCaptureRequest("not-a-uuid", `{"amount":2500}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCapture_MalformedBody(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, testLogger())

	rec := httptest.NewRecorder()
	handler.Capture(rec, newCaptureRequest(uuid.NewString(), `{"amount":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
