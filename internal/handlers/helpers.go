package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gamevault/pensopay/internal/service"
	"github.com/google/uuid"
)

// errorResponse is the JSON body for all error replies
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func parsePathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

// writeServiceError maps a service error to the appropriate HTTP reply.
// Unexpected errors are logged and reported as opaque internal errors.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		h.writeError(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}

	h.writeError(w, statusForCode(svcErr.Code), svcErr.Code, svcErr.Message)
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeCartNotFound,
		service.ErrCodeOrderNotFound,
		service.ErrCodeTransactionNotFound,
		service.ErrCodeUnknownReference:
		return http.StatusNotFound
	case service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidCurrency,
		service.ErrCodeInvalidReference:
		return http.StatusBadRequest
	case service.ErrCodeUnmappedEvent, service.ErrCodeUnmappedState:
		return http.StatusUnprocessableEntity
	case service.ErrCodeOrderConflict, service.ErrCodeAlreadyRecorded:
		return http.StatusConflict
	case service.ErrCodeTransportFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
