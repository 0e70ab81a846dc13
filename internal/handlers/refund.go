package handlers

import (
	"net/http"

	"github.com/gamevault/pensopay/internal/service"
)

type refundRequest struct {
	Notes  string `json:"notes,omitempty"`
	Amount int64  `json:"amount"`
}

// Refund handles POST /api/v1/transactions/{transactionId}/refund
func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	transactionID, err := parsePathUUID(r, "transactionId")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeTransactionNotFound, "invalid transaction id")
		return
	}

	var req refundRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeInvalidAmount, "invalid request body")
		return
	}

	result, err := h.lifecycle.Refund(r.Context(), transactionID, req.Amount, req.Notes)
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
