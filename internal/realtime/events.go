package realtime

import (
	"fmt"
	"time"

	"autofixpro/internal/domain/entities"
)

// BuildOrderCreatedEvent is the customer-facing confirmation of a new
// repair request.
func BuildOrderCreatedEvent(order entities.ServiceOrder, vehicle entities.Vehicle) entities.NotificationEvent {
	return entities.NotificationEvent{
		Type:      entities.EventOrderCreated,
		Title:     "Repair Request Created",
		Message:   fmt.Sprintf("Your repair request %s has been created.", order.ID),
		OrderID:   order.ID,
		VehicleID: vehicle.ID,
		NewState:  string(order.State),
		Progress:  order.State.Progress(),
		Timestamp: time.Now().UTC(),
	}
}

// BuildNewRequestEvent is the staff-topic announcement of a new request.
func BuildNewRequestEvent(order entities.ServiceOrder, vehicle entities.Vehicle) entities.NotificationEvent {
	return entities.NotificationEvent{
		Type:      entities.EventOrderCreated,
		Title:     "New Repair Request",
		Message:   fmt.Sprintf("New repair request for %s %s (%s).", vehicle.Brand, vehicle.Model, vehicle.Plate),
		OrderID:   order.ID,
		VehicleID: vehicle.ID,
		NewState:  string(order.State),
		Progress:  order.State.Progress(),
		Timestamp: time.Now().UTC(),
	}
}

// BuildStateChangeEvent carries previous/new state and the computed progress
// for the customer's live status view.
func BuildStateChangeEvent(order entities.ServiceOrder, vehicle entities.Vehicle, previous entities.OrderState) entities.NotificationEvent {
	return entities.NotificationEvent{
		Type:          entities.EventStateChanged,
		Title:         "Status Updated",
		Message:       fmt.Sprintf("Your vehicle %s %s is now: %s", vehicle.Brand, vehicle.Model, order.State.Description()),
		OrderID:       order.ID,
		VehicleID:     vehicle.ID,
		PreviousState: string(previous),
		NewState:      string(order.State),
		Progress:      order.State.Progress(),
		Timestamp:     time.Now().UTC(),
	}
}

// BuildCompletionEvent is always reported at 100% progress.
func BuildCompletionEvent(order entities.ServiceOrder, vehicle entities.Vehicle) entities.NotificationEvent {
	return entities.NotificationEvent{
		Type:      entities.EventOrderComplete,
		Title:     "Repair Completed!",
		Message:   fmt.Sprintf("Your vehicle %s %s is ready. You can come pick it up.", vehicle.Brand, vehicle.Model),
		OrderID:   order.ID,
		VehicleID: vehicle.ID,
		NewState:  string(entities.OrderStateCompleted),
		Progress:  100,
		Timestamp: time.Now().UTC(),
	}
}
