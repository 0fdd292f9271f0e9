package response

import (
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"
)

type StatusSnapshotResponse struct {
	State        string    `json:"state"`
	Description  string    `json:"description"`
	Progress     int       `json:"progress"`
	Observations string    `json:"observations,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

func FromStatusSnapshot(s entities.StatusSnapshot) StatusSnapshotResponse {
	return StatusSnapshotResponse{
		State:        s.State,
		Description:  s.Description,
		Progress:     s.Progress,
		Observations: s.Observations,
		RecordedAt:   s.RecordedAt,
	}
}

// VehicleStatusResponse is the public status page payload. It intentionally
// omits owner contact data and internal ids beyond what the page needs.
type VehicleStatusResponse struct {
	Plate            string                   `json:"plate"`
	Brand            string                   `json:"brand"`
	Model            string                   `json:"model"`
	OrderID          string                   `json:"order_id"`
	State            string                   `json:"state"`
	StateDescription string                   `json:"state_description"`
	Progress         int                      `json:"progress"`
	ReceivedAt       time.Time                `json:"received_at"`
	DeliveredAt      *time.Time               `json:"delivered_at,omitempty"`
	History          []StatusSnapshotResponse `json:"history"`
}

func FromVehicleStatusReport(r usecase.VehicleStatusReport) VehicleStatusResponse {
	history := make([]StatusSnapshotResponse, 0, len(r.History))
	for _, s := range r.History {
		history = append(history, FromStatusSnapshot(s))
	}
	return VehicleStatusResponse{
		Plate:            r.Vehicle.Plate,
		Brand:            r.Vehicle.Brand,
		Model:            r.Vehicle.Model,
		OrderID:          r.Order.ID,
		State:            string(r.Order.State),
		StateDescription: r.Order.State.Description(),
		Progress:         r.Order.State.Progress(),
		ReceivedAt:       r.Order.ReceivedAt,
		DeliveredAt:      r.Order.DeliveredAt,
		History:          history,
	}
}
