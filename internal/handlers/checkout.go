package handlers

import (
	"net/http"

	"github.com/gamevault/pensopay/internal/service"
	"github.com/google/uuid"
)

type authorizeRequest struct {
	CartID      string `json:"cart_id"`
	SuccessURL  string `json:"success_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type authorizeResponse struct {
	Success       bool   `json:"success"`
	Code          string `json:"code,omitempty"`
	Message       string `json:"message,omitempty"`
	RedirectLink  string `json:"redirect_link,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Authorize handles POST /api/v1/checkout/authorize
//
// The checkout flow sees either a redirect link (success) or a failure
// message; conflicting or rejected checkouts are 200 replies with
// success=false, not transport errors.
func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req authorizeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeInvalidReference, "invalid request body")
		return
	}

	cartID, err := uuid.Parse(req.CartID)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeCartNotFound, "invalid cart id")
		return
	}

	result, err := h.lifecycle.Authorize(r.Context(), cartID, service.CheckoutURLs{
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := authorizeResponse{
		Success:      result.Success,
		Code:         result.Code,
		Message:      result.Message,
		RedirectLink: result.RedirectLink,
	}
	if result.OrderID != uuid.Nil {
		resp.OrderID = result.OrderID.String()
	}
	if result.Transaction != nil {
		resp.TransactionID = result.Transaction.ID.String()
	}

	h.writeJSON(w, http.StatusOK, resp)
}
