package entities

import "time"

// StatusSnapshot is one immutable record of an order's state at a point in
// time. Snapshots form the append-only history behind the public vehicle
// status page; they are never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type StatusSnapshot struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	State        string    `json:"state"`
	Description  string    `json:"description"`
	Progress     int       `json:"progress"`
	Observations string    `json:"observations,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}
