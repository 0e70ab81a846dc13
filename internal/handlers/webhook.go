package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/service"
)

// Webhook handles POST /api/v1/webhooks/pensopay
//
// Signature verification happens upstream in the webhook delivery
// collaborator; this endpoint only records what the gateway reported.
// Failures here are invisible to the end user but logged for operators.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.ErrCodeInternalError, "failed to read body")
		return
	}

	event, err := gateway.ParseWebhookEvent(body)
	if err != nil {
		h.logger.Warn("malformed webhook payload", "error", err)
		h.writeError(w, http.StatusBadRequest, service.ErrCodeUnmappedEvent, "malformed webhook payload")
		return
	}

	h.logger.Info("webhook received",
		"event", event.Event,
		"reference", event.Resource.ID,
	)

	if err := h.ingestor.Ingest(r.Context(), event); err != nil {
		if errors.Is(err, models.ErrUnknownReference) {
			// Terminal for this event: it cannot be correlated, and retrying
			// will not change that.
			h.logger.Error("webhook references unknown payment",
				"event", event.Event,
				"reference", event.Resource.ID,
			)
		} else {
			h.logger.Error("webhook ingestion failed",
				"event", event.Event,
				"reference", event.Resource.ID,
				"error", err,
			)
		}
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}
