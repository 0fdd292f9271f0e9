package response

import (
	"time"

	"autofixpro/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID                 string     `json:"id"`
	VehicleID          string     `json:"vehicle_id"`
	TechnicianID       string     `json:"technician_id,omitempty"`
	ProblemDescription string     `json:"problem_description"`
	State              string     `json:"state"`
	StateDescription   string     `json:"state_description"`
	Progress           int        `json:"progress"`
	Priority           string     `json:"priority"`
	EstimatedCost      *float64   `json:"estimated_cost,omitempty"`
	ReceivedAt         time.Time  `json:"received_at"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:                 o.ID,
		VehicleID:          o.VehicleID,
		TechnicianID:       o.TechnicianID,
		ProblemDescription: o.ProblemDescription,
		State:              string(o.State),
		StateDescription:   o.State.Description(),
		Progress:           o.State.Progress(),
		Priority:           string(o.Priority),
		EstimatedCost:      o.EstimatedCost,
		ReceivedAt:         o.ReceivedAt,
		DeliveredAt:        o.DeliveredAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
