package entities

import "time"

// OrderState is the lifecycle state of a service order.
//
// Lifecycle (terminal states marked *):
//
//	RECEIVED -> IN_DIAGNOSIS -> IN_REPAIR -> IN_TESTING -> COMPLETED* -> DELIVERED*
//	CANCELLED* reachable from any non-terminal state.
//
// Transitions are driven externally and are intentionally permissive: any
// defined state is accepted, including repeats and backward moves. Only
// undefined labels are rejected at the API boundary.

type OrderState string

const (
	OrderStateReceived    OrderState = "RECEIVED"
	OrderStateInDiagnosis OrderState = "IN_DIAGNOSIS"
	OrderStateInRepair    OrderState = "IN_REPAIR"
	OrderStateInTesting   OrderState = "IN_TESTING"
	OrderStateCompleted   OrderState = "COMPLETED"
	OrderStateDelivered   OrderState = "DELIVERED"
	OrderStateCancelled   OrderState = "CANCELLED"
)

// progressByState is the single source of truth for progress percentages.
// Both the status tracker and the realtime fan-out read from here.
var progressByState = map[OrderState]int{
	OrderStateReceived:    10,
	OrderStateInDiagnosis: 25,
	OrderStateInRepair:    50,
	OrderStateInTesting:   80,
	OrderStateCompleted:   100,
	OrderStateDelivered:   100,
}

var stateDescriptions = map[OrderState]string{
	OrderStateReceived:    "Received",
	OrderStateInDiagnosis: "In Diagnosis",
	OrderStateInRepair:    "In Repair",
	OrderStateInTesting:   "In Testing",
	OrderStateCompleted:   "Completed",
	OrderStateDelivered:   "Delivered",
	OrderStateCancelled:   "Cancelled",
}

// Progress returns the fixed progress percentage for the state.
// Unknown states map to 0.
func (s OrderState) Progress() int {
	return progressByState[s]
}

// Description returns the human-readable label shown to customers.
func (s OrderState) Description() string {
	if d, ok := stateDescriptions[s]; ok {
		return d
	}
	return string(s)
}

// IsDefined reports whether s is one of the lifecycle states.
func (s OrderState) IsDefined() bool {
	_, ok := stateDescriptions[s]
	return ok
}

// IsOpen reports whether an order in this state still counts against a
// technician's workload. Completed and delivered orders are closed.
func (s OrderState) IsOpen() bool {
	return s != OrderStateCompleted && s != OrderStateDelivered
}

// SMSWorthy reports whether a transition into s warrants an SMS in addition
// to email. SMS is reserved for the two states customers most want immediate
// word of.
func (s OrderState) SMSWorthy() bool {
	return s == OrderStateCompleted || s == OrderStateInRepair
}

// Priority classifies how urgent a service order is.

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// IsDefined reports whether p is one of the known priorities.
func (p Priority) IsDefined() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ServiceOrder is one tracked repair job for a vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//   - GSI2 (technician_id-index): technician_id
//
// Invariants:
//   - State is always one of the defined lifecycle states.
//   - DeliveredAt is set only once the order reaches COMPLETED or later.
//   - At most one technician is assigned at a time; TechnicianID is empty
//     while the order is pending assignment.
type ServiceOrder struct {
	ID                 string     `json:"id"`
	VehicleID          string     `json:"vehicle_id"`
	TechnicianID       string     `json:"technician_id,omitempty"`
	ProblemDescription string     `json:"problem_description"`
	State              OrderState `json:"state"`
	Priority           Priority   `json:"priority"`
	EstimatedCost      *float64   `json:"estimated_cost,omitempty"`
	ReceivedAt         time.Time  `json:"received_at"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

// Assigned reports whether the order currently has a technician.
func (o ServiceOrder) Assigned() bool {
	return o.TechnicianID != ""
}
