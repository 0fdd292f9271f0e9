package response

import (
	"testing"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:                 "ord-1",
		VehicleID:          "veh-1",
		TechnicianID:       "tech-1",
		ProblemDescription: "engine knocking",
		State:              entities.OrderStateInRepair,
		Priority:           entities.PriorityHigh,
		ReceivedAt:         now,
	}

	res := FromServiceOrder(o)
	if res.ID != "ord-1" || res.VehicleID != "veh-1" || res.TechnicianID != "tech-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.State != "IN_REPAIR" || res.StateDescription != "In Repair" {
		t.Fatalf("unexpected state fields: %+v", res)
	}
	if res.Progress != 50 {
		t.Fatalf("expected progress 50, got %d", res.Progress)
	}
	if res.Priority != "HIGH" || !res.ReceivedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DeliveredAt != nil {
		t.Fatalf("expected nil delivered_at, got %v", res.DeliveredAt)
	}
}

func TestFromVehicleStatusReport(t *testing.T) {
	now := time.Now().UTC()
	report := usecase.VehicleStatusReport{
		Vehicle: entities.Vehicle{Plate: "ABC1D23", Brand: "Fiat", Model: "Uno", Owner: entities.OwnerContact{Email: "x@y.z"}},
		Order:   entities.ServiceOrder{ID: "ord-1", State: entities.OrderStateCompleted, ReceivedAt: now, DeliveredAt: &now},
		History: []entities.StatusSnapshot{{State: "RECEIVED", Progress: 0, RecordedAt: now}},
	}

	res := FromVehicleStatusReport(report)
	if res.Plate != "ABC1D23" || res.OrderID != "ord-1" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Progress != 100 || res.StateDescription != "Completed" {
		t.Fatalf("unexpected state fields: %+v", res)
	}
	if len(res.History) != 1 || res.History[0].Progress != 0 {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if res.DeliveredAt == nil {
		t.Fatal("expected delivered_at to be set")
	}
}
