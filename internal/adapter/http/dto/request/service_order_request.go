package request

import (
	"strings"

	"autofixpro/internal/domain/entities"
)

// CreateServiceOrderRequest opens a repair job for a registered vehicle.
// Priority is optional and defaults to NORMAL downstream.
type CreateServiceOrderRequest struct {
	VehicleID          string `json:"vehicle_id" binding:"required"`
	ProblemDescription string `json:"problem_description" binding:"required"`
	Priority           string `json:"priority"`
}

func (r CreateServiceOrderRequest) ResolvePriority() entities.Priority {
	return entities.Priority(strings.ToUpper(strings.TrimSpace(r.Priority)))
}

// AssignTechnicianRequest overrides the automatic technician assignment.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

// UpdateOrderStateRequest drives one lifecycle transition. State labels are
// accepted case-insensitively.
type UpdateOrderStateRequest struct {
	NewState     string `json:"new_state" binding:"required"`
	Observations string `json:"observations"`
}

func (r UpdateOrderStateRequest) ResolveState() entities.OrderState {
	return entities.OrderState(strings.ToUpper(strings.TrimSpace(r.NewState)))
}
