package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autofixpro/internal/domain/entities"
	mock_interfaces "autofixpro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderUseCaseFixture struct {
	orders      *mock_interfaces.MockIServiceOrderRepository
	vehicles    *mock_interfaces.MockIVehicleRepository
	technicians *mock_interfaces.MockITechnicianRepository
	snapshots   *mock_interfaces.MockIStatusSnapshotRepository
	dispatcher  *mock_interfaces.MockINotificationDispatcher
	realtime    *mock_interfaces.MockIRealtimePublisher
	uc          *ServiceOrderUseCase
}

func newOrderUseCaseFixture(t *testing.T) *orderUseCaseFixture {
	ctrl := gomock.NewController(t)
	f := &orderUseCaseFixture{
		orders:      mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		vehicles:    mock_interfaces.NewMockIVehicleRepository(ctrl),
		technicians: mock_interfaces.NewMockITechnicianRepository(ctrl),
		snapshots:   mock_interfaces.NewMockIStatusSnapshotRepository(ctrl),
		dispatcher:  mock_interfaces.NewMockINotificationDispatcher(ctrl),
		realtime:    mock_interfaces.NewMockIRealtimePublisher(ctrl),
	}
	f.uc = NewServiceOrderUseCase(f.orders, f.vehicles, f.technicians, NewStatusTracker(f.snapshots), f.dispatcher, f.realtime)
	return f
}

func passthroughSnapshotCreate(f *orderUseCaseFixture, sink *[]entities.StatusSnapshot) {
	f.snapshots.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StatusSnapshot{})).DoAndReturn(
		func(_ context.Context, s entities.StatusSnapshot) (entities.StatusSnapshot, error) {
			*sink = append(*sink, s)
			return s, nil
		},
	).AnyTimes()
}

func TestServiceOrderUseCase_CreateOrder(t *testing.T) {
	vehicle := entities.Vehicle{
		ID:    "veh-1",
		Plate: "ABC123",
		Owner: entities.OwnerContact{Name: "Ana", Email: "ana@example.com", Phone: "987654321", Username: "ana"},
	}

	t.Run("invalid vehicle id", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		_, err := f.uc.CreateOrder(context.Background(), "  ", "engine noise", "")
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("missing problem description", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		_, err := f.uc.CreateOrder(context.Background(), "veh-1", "   ", "")
		if !errors.Is(err, ErrMissingProblem) {
			t.Fatalf("expected ErrMissingProblem, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		_, err := f.uc.CreateOrder(context.Background(), "veh-1", "engine noise", "CRITICAL")
		if !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		_, err := f.uc.CreateOrder(context.Background(), "veh-1", "engine noise", "")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("assigns least loaded technician", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)

		t1 := entities.Technician{ID: "tech-1", Active: true}
		t2 := entities.Technician{ID: "tech-2", Active: true}
		t3 := entities.Technician{ID: "tech-3", Active: true}

		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		f.technicians.EXPECT().ListActive(gomock.Any()).Return([]entities.Technician{t1, t2, t3}, nil)
		f.orders.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return([]entities.ServiceOrder{
			{State: entities.OrderStateInRepair},
		}, nil)
		f.orders.EXPECT().ListByTechnicianID(gomock.Any(), "tech-2").Return([]entities.ServiceOrder{
			{State: entities.OrderStateCompleted},
			{State: entities.OrderStateDelivered},
		}, nil)
		f.orders.EXPECT().ListByTechnicianID(gomock.Any(), "tech-3").Return([]entities.ServiceOrder{
			{State: entities.OrderStateReceived},
			{State: entities.OrderStateInDiagnosis},
			{State: entities.OrderStateInTesting},
		}, nil)

		var created entities.ServiceOrder
		f.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				created = o
				return o, nil
			},
		)

		var snapshots []entities.StatusSnapshot
		passthroughSnapshotCreate(f, &snapshots)

		f.dispatcher.EXPECT().NotifyIntake(gomock.Any(), gomock.Any(), vehicle)
		f.realtime.EXPECT().NotifyOrderCreated(gomock.Any(), vehicle)

		order, err := f.uc.CreateOrder(context.Background(), "veh-1", "engine noise", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.TechnicianID != "tech-2" {
			t.Fatalf("expected tech-2 (closed orders only), got %q", order.TechnicianID)
		}
		if order.State != entities.OrderStateReceived {
			t.Fatalf("expected RECEIVED, got %s", order.State)
		}
		if order.Priority != entities.PriorityNormal {
			t.Fatalf("expected NORMAL priority default, got %s", order.Priority)
		}
		if created.ID == "" || created.ReceivedAt.IsZero() {
			t.Fatalf("expected generated id and intake timestamp: %+v", created)
		}
		if len(snapshots) != 1 {
			t.Fatalf("expected exactly one intake snapshot, got %d", len(snapshots))
		}
		if snapshots[0].Progress != 0 || snapshots[0].State != string(entities.OrderStateReceived) {
			t.Fatalf("unexpected intake snapshot: %+v", snapshots[0])
		}
	})

	t.Run("no active technicians leaves order unassigned", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)

		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		f.technicians.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)

		var snapshots []entities.StatusSnapshot
		passthroughSnapshotCreate(f, &snapshots)
		f.dispatcher.EXPECT().NotifyIntake(gomock.Any(), gomock.Any(), vehicle)
		f.realtime.EXPECT().NotifyOrderCreated(gomock.Any(), vehicle)

		order, err := f.uc.CreateOrder(context.Background(), "veh-1", "engine noise", entities.PriorityHigh)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Assigned() {
			t.Fatalf("expected unassigned order, got technician %q", order.TechnicianID)
		}
		if order.Priority != entities.PriorityHigh {
			t.Fatalf("expected HIGH priority, got %s", order.Priority)
		}
	})

	t.Run("snapshot failure fails creation", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)

		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		f.technicians.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		f.snapshots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.StatusSnapshot{}, errors.New("db"))

		_, err := f.uc.CreateOrder(context.Background(), "veh-1", "engine noise", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_AssignTechnician(t *testing.T) {
	t.Run("technician not found", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.technicians.EXPECT().GetByID(gomock.Any(), "tech-404").Return(entities.Technician{}, nil)

		_, err := f.uc.AssignTechnician(context.Background(), "ord-1", "tech-404")
		if !errors.Is(err, ErrTechnicianNotFound) {
			t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
		}
	})

	t.Run("inactive technician is rejected", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.technicians.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Active: false}, nil)

		_, err := f.uc.AssignTechnician(context.Background(), "ord-1", "tech-1")
		if !errors.Is(err, ErrTechnicianInactive) {
			t.Fatalf("expected ErrTechnicianInactive, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.technicians.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Active: true}, nil)
		f.orders.EXPECT().AssignTechnician(gomock.Any(), "ord-404", "tech-1").Return(entities.ServiceOrder{}, nil)

		_, err := f.uc.AssignTechnician(context.Background(), "ord-404", "tech-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.technicians.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Active: true}, nil)
		f.orders.EXPECT().AssignTechnician(gomock.Any(), "ord-1", "tech-1").
			Return(entities.ServiceOrder{ID: "ord-1", TechnicianID: "tech-1", State: entities.OrderStateReceived}, nil)

		order, err := f.uc.AssignTechnician(context.Background(), "ord-1", "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.TechnicianID != "tech-1" {
			t.Fatalf("expected tech-1, got %q", order.TechnicianID)
		}
	})
}

func TestServiceOrderUseCase_AdvanceState(t *testing.T) {
	vehicle := entities.Vehicle{ID: "veh-1", Owner: entities.OwnerContact{Email: "ana@example.com"}}
	stored := entities.ServiceOrder{ID: "ord-1", VehicleID: "veh-1", State: entities.OrderStateReceived}

	t.Run("invalid order id", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		_, err := f.uc.AdvanceState(context.Background(), " ", entities.OrderStateInRepair, "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("undefined state", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		_, err := f.uc.AdvanceState(context.Background(), "ord-1", "EXPLODED", "")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.ServiceOrder{}, nil)

		_, err := f.uc.AdvanceState(context.Background(), "ord-1", entities.OrderStateInRepair, "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("snapshot progress follows state table", func(t *testing.T) {
		cases := map[entities.OrderState]int{
			entities.OrderStateReceived:    10,
			entities.OrderStateInDiagnosis: 25,
			entities.OrderStateInRepair:    50,
			entities.OrderStateInTesting:   80,
			entities.OrderStateCompleted:   100,
			entities.OrderStateDelivered:   100,
		}
		for newState, wantProgress := range cases {
			f := newOrderUseCaseFixture(t)
			updated := stored
			updated.State = newState

			f.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stored, nil)
			f.orders.EXPECT().UpdateState(gomock.Any(), "ord-1", newState, nil).Return(updated, nil)

			var snapshots []entities.StatusSnapshot
			passthroughSnapshotCreate(f, &snapshots)

			f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
			f.dispatcher.EXPECT().NotifyStateChange(gomock.Any(), updated, vehicle, entities.OrderStateReceived)
			f.realtime.EXPECT().NotifyStateChange(updated, vehicle, entities.OrderStateReceived)

			res, err := f.uc.AdvanceState(context.Background(), "ord-1", newState, "work note")
			if err != nil {
				t.Fatalf("state %s: unexpected error: %v", newState, err)
			}
			if res.State != newState {
				t.Fatalf("state %s: got %s", newState, res.State)
			}
			if len(snapshots) != 1 || snapshots[0].Progress != wantProgress {
				t.Fatalf("state %s: expected one snapshot at %d%%, got %+v", newState, wantProgress, snapshots)
			}
			if snapshots[0].Observations != "work note" {
				t.Fatalf("state %s: observations not carried: %+v", newState, snapshots[0])
			}
		}
	})

	t.Run("repeating a state appends a second snapshot", func(t *testing.T) {
		// Documents the absence of an idempotence guard: a same-state
		// transition re-emits snapshot and notifications.
		f := newOrderUseCaseFixture(t)
		inRepair := stored
		inRepair.State = entities.OrderStateInRepair

		f.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(inRepair, nil).Times(2)
		f.orders.EXPECT().UpdateState(gomock.Any(), "ord-1", entities.OrderStateInRepair, nil).Return(inRepair, nil).Times(2)

		var snapshots []entities.StatusSnapshot
		passthroughSnapshotCreate(f, &snapshots)

		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil).Times(2)
		f.dispatcher.EXPECT().NotifyStateChange(gomock.Any(), inRepair, vehicle, entities.OrderStateInRepair).Times(2)
		f.realtime.EXPECT().NotifyStateChange(inRepair, vehicle, entities.OrderStateInRepair).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := f.uc.AdvanceState(context.Background(), "ord-1", entities.OrderStateInRepair, ""); err != nil {
				t.Fatalf("advance %d: unexpected error: %v", i, err)
			}
		}
		if len(snapshots) != 2 {
			t.Fatalf("expected two snapshots, got %d", len(snapshots))
		}
	})

	t.Run("unresolvable vehicle skips notifications but keeps the transition", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		updated := stored
		updated.State = entities.OrderStateInDiagnosis

		f.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stored, nil)
		f.orders.EXPECT().UpdateState(gomock.Any(), "ord-1", entities.OrderStateInDiagnosis, nil).Return(updated, nil)

		var snapshots []entities.StatusSnapshot
		passthroughSnapshotCreate(f, &snapshots)
		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		res, err := f.uc.AdvanceState(context.Background(), "ord-1", entities.OrderStateInDiagnosis, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.State != entities.OrderStateInDiagnosis {
			t.Fatalf("expected IN_DIAGNOSIS, got %s", res.State)
		}
	})
}

func TestServiceOrderUseCase_CompleteOrder(t *testing.T) {
	vehicle := entities.Vehicle{ID: "veh-1", Owner: entities.OwnerContact{Email: "ana@example.com", Username: "ana"}}
	stored := entities.ServiceOrder{ID: "ord-1", VehicleID: "veh-1", State: entities.OrderStateInTesting}

	t.Run("order not found", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.ServiceOrder{}, nil)

		_, err := f.uc.CompleteOrder(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)

		f.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stored, nil)
		f.orders.EXPECT().UpdateState(gomock.Any(), "ord-1", entities.OrderStateCompleted, gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, id string, state entities.OrderState, deliveredAt *time.Time) (entities.ServiceOrder, error) {
				if deliveredAt == nil || deliveredAt.IsZero() {
					t.Fatalf("expected delivery timestamp")
				}
				updated := stored
				updated.State = state
				updated.DeliveredAt = deliveredAt
				return updated, nil
			},
		)

		var snapshots []entities.StatusSnapshot
		passthroughSnapshotCreate(f, &snapshots)

		f.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		f.dispatcher.EXPECT().NotifyCompletion(gomock.Any(), gomock.Any(), vehicle)
		f.realtime.EXPECT().NotifyCompletion(gomock.Any(), vehicle)

		res, err := f.uc.CompleteOrder(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.State != entities.OrderStateCompleted {
			t.Fatalf("expected COMPLETED, got %s", res.State)
		}
		if res.DeliveredAt == nil {
			t.Fatalf("expected non-nil delivery timestamp")
		}
		if len(snapshots) != 1 || snapshots[0].Progress != 100 {
			t.Fatalf("expected one 100%% snapshot, got %+v", snapshots)
		}
	})
}

func TestServiceOrderUseCase_VehicleStatusByPlate(t *testing.T) {
	vehicle := entities.Vehicle{ID: "veh-1", Plate: "ABC123"}

	t.Run("vehicle not found", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.vehicles.EXPECT().GetByPlate(gomock.Any(), "ABC123").Return(entities.Vehicle{}, nil)

		_, err := f.uc.VehicleStatusByPlate(context.Background(), "ABC123")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("lowercase plate matches the uppercased record", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.vehicles.EXPECT().GetByPlate(gomock.Any(), "ABC123").Return(entities.Vehicle{}, nil)

		_, err := f.uc.VehicleStatusByPlate(context.Background(), "  abc123 ")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("no service history", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		f.vehicles.EXPECT().GetByPlate(gomock.Any(), "ABC123").Return(vehicle, nil)
		f.orders.EXPECT().ListByVehicleID(gomock.Any(), "veh-1").Return(nil, nil)

		_, err := f.uc.VehicleStatusByPlate(context.Background(), "ABC123")
		if !errors.Is(err, ErrNoServiceHistory) {
			t.Fatalf("expected ErrNoServiceHistory, got %v", err)
		}
	})

	t.Run("returns latest order with history", func(t *testing.T) {
		f := newOrderUseCaseFixture(t)
		older := entities.ServiceOrder{ID: "ord-1", VehicleID: "veh-1", ReceivedAt: time.Now().Add(-48 * time.Hour)}
		newer := entities.ServiceOrder{ID: "ord-2", VehicleID: "veh-1", ReceivedAt: time.Now().Add(-1 * time.Hour), State: entities.OrderStateInRepair}
		history := []entities.StatusSnapshot{{ID: "snap-1", OrderID: "ord-2"}}

		f.vehicles.EXPECT().GetByPlate(gomock.Any(), "ABC123").Return(vehicle, nil)
		f.orders.EXPECT().ListByVehicleID(gomock.Any(), "veh-1").Return([]entities.ServiceOrder{older, newer}, nil)
		f.snapshots.EXPECT().ListByOrderID(gomock.Any(), "ord-2").Return(history, nil)

		report, err := f.uc.VehicleStatusByPlate(context.Background(), "ABC123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Order.ID != "ord-2" {
			t.Fatalf("expected latest order ord-2, got %s", report.Order.ID)
		}
		if len(report.History) != 1 {
			t.Fatalf("expected history, got %+v", report.History)
		}
	})
}
