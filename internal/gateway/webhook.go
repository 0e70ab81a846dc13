package gateway

import (
	"encoding/json"
	"fmt"
)

// WebhookEvent is one asynchronous notification pushed by the gateway.
// Delivery is at-least-once and unordered relative to the synchronous API
// response for the same state change.
type WebhookEvent struct {
	Event    string          `json:"event"`
	Resource WebhookResource `json:"resource"`
}

// WebhookResource is the payment the event refers to
type WebhookResource struct {
	ID             string         `json:"id"`
	PaymentDetails PaymentDetails `json:"payment_details"`
	Amount         int64          `json:"amount"`
	Captured       bool           `json:"captured"`
	Refunded       bool           `json:"refunded"`
	Autocapture    bool           `json:"autocapture"`
	Testmode       bool           `json:"testmode"`
}

// PaymentDetails carries card and customer metadata from the gateway
type PaymentDetails struct {
	Brand           string `json:"brand"`
	Last4           string `json:"last4"`
	Bin             string `json:"bin"`
	Country         string `json:"country"`
	Segment         string `json:"segment"`
	CustomerCountry string `json:"customer_country"`
	ExpYear         int    `json:"exp_year"`
	ExpMonth        int    `json:"exp_month"`
	Is3DSecure      bool   `json:"is_3d_secure"`
}

// ParseWebhookEvent decodes one raw webhook body
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}
	if event.Event == "" {
		return nil, fmt.Errorf("webhook payload missing event name")
	}
	if event.Resource.ID == "" {
		return nil, fmt.Errorf("webhook payload missing resource id")
	}
	return &event, nil
}
