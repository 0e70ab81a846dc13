package handlers

import (
	"net/http"
	"time"

	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/service"
)

type transactionView struct {
	CreatedAt           time.Time      `json:"created_at"`
	CapturedAt          *time.Time     `json:"captured_at,omitempty"`
	Meta                map[string]any `json:"meta,omitempty"`
	ID                  string         `json:"id"`
	ParentTransactionID string         `json:"parent_transaction_id,omitempty"`
	Type                string         `json:"type"`
	Driver              string         `json:"driver"`
	Reference           string         `json:"reference"`
	Status              string         `json:"status"`
	Notes               string         `json:"notes,omitempty"`
	CardType            string         `json:"card_type,omitempty"`
	LastFour            string         `json:"last_four,omitempty"`
	Amount              int64          `json:"amount"`
	Success             bool           `json:"success"`
}

type transactionListResponse struct {
	Transactions []transactionView `json:"transactions"`
}

// ListOrderTransactions handles GET /api/v1/orders/{orderId}/transactions
func (h *Handler) ListOrderTransactions(w http.ResponseWriter, r *http.Request) {
	orderID, err := parsePathUUID(r, "orderId")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeOrderNotFound, "invalid order id")
		return
	}

	txns, err := h.ledger.ListTransactions(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	views := make([]transactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, newTransactionView(txn))
	}

	h.writeJSON(w, http.StatusOK, transactionListResponse{Transactions: views})
}

func newTransactionView(txn *models.Transaction) transactionView {
	view := transactionView{
		ID:         txn.ID.String(),
		Type:       string(txn.Type),
		Driver:     txn.Driver,
		Reference:  txn.Reference,
		Status:     txn.Status,
		Notes:      txn.Notes,
		CardType:   txn.CardType,
		LastFour:   txn.LastFour,
		Amount:     txn.Amount,
		Success:    txn.Success,
		CapturedAt: txn.CapturedAt,
		Meta:       txn.Meta,
		CreatedAt:  txn.CreatedAt,
	}
	if txn.ParentTransactionID != nil {
		view.ParentTransactionID = txn.ParentTransactionID.String()
	}
	return view
}
