package payment

import (
	"encoding/json"
	"fmt"
)

type EventType string

const (
	EventSessionCompleted EventType = "checkout.session.completed"
	EventSessionExpired   EventType = "checkout.session.expired"
)

// Event is the gateway's webhook envelope. Delivery is at-least-once and may
// be reordered; the envelope itself carries no ordering information.
type Event struct {
	ID   string    `json:"id"`
	Type EventType `json:"type"`
	Data struct {
		Object SessionObject `json:"object"`
	} `json:"data"`
}

// SessionObject describes the checkout session an event refers to. Metadata
// is caller-assigned at session creation, so its booking_id entry is the
// trustworthy join key; the session id is only a fallback.
type SessionObject struct {
	ID        string            `json:"id"`
	PaymentID string            `json:"payment_id"`
	Metadata  map[string]string `json:"metadata"`
}

const MetadataBookingID = "booking_id"

func ParseEvent(payload []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("parse webhook event: %w", err)
	}
	if ev.Type == "" {
		return nil, fmt.Errorf("parse webhook event: missing type")
	}

	return &ev, nil
}
