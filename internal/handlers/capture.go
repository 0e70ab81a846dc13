package handlers

import (
	"net/http"

	"github.com/gamevault/pensopay/internal/service"
)

type captureRequest struct {
	Amount int64 `json:"amount"`
}

type operationResponse struct {
	Success       bool   `json:"success"`
	Code          string `json:"code,omitempty"`
	Message       string `json:"message,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Capture handles POST /api/v1/transactions/{transactionId}/capture
func (h *Handler) Capture(w http.ResponseWriter, r *http.Request) {
	transactionID, err := parsePathUUID(r, "transactionId")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeTransactionNotFound, "invalid transaction id")
		return
	}

	var req captureRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeInvalidAmount, "invalid request body")
		return
	}

	result, err := h.lifecycle.Capture(r.Context(), transactionID, req.Amount)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := operationResponse{
		Success: result.Success,
		Code:    result.Code,
		Message: result.Message,
	}
	if result.Transaction != nil {
		resp.TransactionID = result.Transaction.ID.String()
	}

	h.writeJSON(w, http.StatusOK, resp)
}
