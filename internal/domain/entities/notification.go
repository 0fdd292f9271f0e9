package entities

import "time"

// NotificationEventType tags a realtime event pushed to connected clients.

type NotificationEventType string

const (
	EventOrderCreated  NotificationEventType = "ORDER_CREATED"
	EventStateChanged  NotificationEventType = "STATE_CHANGED"
	EventOrderComplete NotificationEventType = "ORDER_COMPLETED"
	EventCustomMessage NotificationEventType = "CUSTOM_MESSAGE"
)

// NotificationEvent is a realtime message destined for a customer or for the
// staff topic. Events are constructed per dispatch and never persisted;
// delivery is best-effort.
type NotificationEvent struct {
	Type          NotificationEventType `json:"type"`
	Title         string                `json:"title"`
	Message       string                `json:"message"`
	OrderID       string                `json:"order_id,omitempty"`
	VehicleID     string                `json:"vehicle_id,omitempty"`
	PreviousState string                `json:"previous_state,omitempty"`
	NewState      string                `json:"new_state,omitempty"`
	Progress      int                   `json:"progress"`
	Timestamp     time.Time             `json:"timestamp"`
}
