package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound       = errors.New("service order not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidVehicleID    = errors.New("invalid vehicle id")
	ErrInvalidState        = errors.New("invalid order state")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrMissingProblem      = errors.New("missing problem description")
	ErrNoServiceHistory    = errors.New("no service history for vehicle")
	ErrInvalidPlate        = errors.New("invalid plate")
	ErrInvalidTechnicianID = errors.New("invalid technician id")
	ErrTechnicianInactive  = errors.New("technician is inactive")
)

// IServiceOrderUseCase owns the order lifecycle: creation with automatic
// technician assignment, externally driven state transitions, and completion.
// Every mutation appends a status snapshot and fans out best-effort
// notifications; notification failures never fail the business operation.

type IServiceOrderUseCase interface {
	CreateOrder(ctx context.Context, vehicleID, problemDescription string, priority entities.Priority) (entities.ServiceOrder, error)
	AssignTechnician(ctx context.Context, orderID, technicianID string) (entities.ServiceOrder, error)
	AdvanceState(ctx context.Context, orderID string, newState entities.OrderState, observations string) (entities.ServiceOrder, error)
	CompleteOrder(ctx context.Context, orderID string) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListByState(ctx context.Context, state entities.OrderState) ([]entities.ServiceOrder, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error)
	VehicleStatusByPlate(ctx context.Context, plate string) (VehicleStatusReport, error)
}

// VehicleStatusReport is the public status-page view: the vehicle, its most
// recent order, and that order's full snapshot history.
type VehicleStatusReport struct {
	Vehicle entities.Vehicle
	Order   entities.ServiceOrder
	History []entities.StatusSnapshot
}

type ServiceOrderUseCase struct {
	orders      interfaces.IServiceOrderRepository
	vehicles    interfaces.IVehicleRepository
	technicians interfaces.ITechnicianRepository
	tracker     IStatusTracker
	dispatcher  interfaces.INotificationDispatcher
	realtime    interfaces.IRealtimePublisher
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	vehicles interfaces.IVehicleRepository,
	technicians interfaces.ITechnicianRepository,
	tracker IStatusTracker,
	dispatcher interfaces.INotificationDispatcher,
	realtime interfaces.IRealtimePublisher,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:      orders,
		vehicles:    vehicles,
		technicians: technicians,
		tracker:     tracker,
		dispatcher:  dispatcher,
		realtime:    realtime,
	}
}

// CreateOrder registers a repair job for a vehicle: state RECEIVED, priority
// defaulting to NORMAL, automatic least-loaded technician assignment (the
// order stays unassigned when no technician is active), the initial status
// snapshot, and intake notifications to the owning customer.
func (u *ServiceOrderUseCase) CreateOrder(ctx context.Context, vehicleID, problemDescription string, priority entities.Priority) (entities.ServiceOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	}
	problemDescription = strings.TrimSpace(problemDescription)
	if problemDescription == "" {
		return entities.ServiceOrder{}, ErrMissingProblem
	}
	if priority == "" {
		priority = entities.PriorityNormal
	}
	if !priority.IsDefined() {
		return entities.ServiceOrder{}, ErrInvalidPriority
	}

	vehicle, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if vehicle.ID == "" {
		return entities.ServiceOrder{}, ErrVehicleNotFound
	}

	order := entities.ServiceOrder{
		ID:                 uuid.NewString(),
		VehicleID:          vehicle.ID,
		ProblemDescription: problemDescription,
		State:              entities.OrderStateReceived,
		Priority:           priority,
		ReceivedAt:         time.Now().UTC(),
	}

	if tech, ok := u.autoAssign(ctx); ok {
		order.TechnicianID = tech.ID
		log.Infof("[order][usecase] auto-assigned technician=%s order=%s", tech.ID, order.ID)
	} else {
		log.Warnf("[order][usecase] no active technician, order=%s pending assignment", order.ID)
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if _, err := u.tracker.RecordIntake(ctx, created); err != nil {
		return entities.ServiceOrder{}, err
	}

	u.dispatcher.NotifyIntake(ctx, created, vehicle)
	u.realtime.NotifyOrderCreated(created, vehicle)

	return created, nil
}

// AssignTechnician overrides the automatic assignment with an explicit
// choice. The technician must exist and be active; workload is not checked.
func (u *ServiceOrderUseCase) AssignTechnician(ctx context.Context, orderID, technicianID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.ServiceOrder{}, ErrInvalidTechnicianID
	}

	tech, err := u.technicians.GetByID(ctx, technicianID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if tech.ID == "" {
		return entities.ServiceOrder{}, ErrTechnicianNotFound
	}
	if !tech.Active {
		return entities.ServiceOrder{}, ErrTechnicianInactive
	}

	updated, err := u.orders.AssignTechnician(ctx, orderID, technicianID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	log.Infof("[order][usecase] manually assigned technician=%s order=%s", technicianID, orderID)
	return updated, nil
}

// AdvanceState applies an externally driven transition. Any defined state is
// accepted, including repeats and backward moves; every call appends a
// snapshot and re-notifies. There is no idempotence guard.
func (u *ServiceOrderUseCase) AdvanceState(ctx context.Context, orderID string, newState entities.OrderState, observations string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if !newState.IsDefined() {
		return entities.ServiceOrder{}, ErrInvalidState
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	previous := order.State

	updated, err := u.orders.UpdateState(ctx, orderID, newState, nil)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	if _, err := u.tracker.RecordTransition(ctx, updated, newState, observations); err != nil {
		return entities.ServiceOrder{}, err
	}

	u.notifyTransition(ctx, updated, previous, false)

	return updated, nil
}

// CompleteOrder is the convenience completion path: state COMPLETED, delivery
// timestamp set to now, a 100%-progress snapshot, and completion
// notifications over email and SMS.
func (u *ServiceOrderUseCase) CompleteOrder(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	previous := order.State

	now := time.Now().UTC()
	updated, err := u.orders.UpdateState(ctx, orderID, entities.OrderStateCompleted, &now)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	if _, err := u.tracker.RecordTransition(ctx, updated, entities.OrderStateCompleted, "order completed and ready for pickup"); err != nil {
		return entities.ServiceOrder{}, err
	}

	u.notifyTransition(ctx, updated, previous, true)

	return updated, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderUseCase) ListByState(ctx context.Context, state entities.OrderState) ([]entities.ServiceOrder, error) {
	if !state.IsDefined() {
		return nil, ErrInvalidState
	}
	return u.orders.ListByState(ctx, state)
}

func (u *ServiceOrderUseCase) ListByTechnician(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	return u.orders.ListByTechnicianID(ctx, technicianID)
}

func (u *ServiceOrderUseCase) ListByVehicle(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	return u.orders.ListByVehicleID(ctx, vehicleID)
}

// VehicleStatusByPlate serves the public, unauthenticated status page: the
// most recent order for the plate plus its snapshot history.
func (u *ServiceOrderUseCase) VehicleStatusByPlate(ctx context.Context, plate string) (VehicleStatusReport, error) {
	// Plates are stored uppercased; accept whatever case the customer typed.
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return VehicleStatusReport{}, ErrInvalidPlate
	}

	vehicle, err := u.vehicles.GetByPlate(ctx, plate)
	if err != nil {
		return VehicleStatusReport{}, err
	}
	if vehicle.ID == "" {
		return VehicleStatusReport{}, ErrVehicleNotFound
	}

	orders, err := u.orders.ListByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return VehicleStatusReport{}, err
	}
	if len(orders) == 0 {
		return VehicleStatusReport{}, ErrNoServiceHistory
	}

	latest := orders[0]
	for _, o := range orders[1:] {
		if o.ReceivedAt.After(latest.ReceivedAt) {
			latest = o
		}
	}

	history, err := u.tracker.History(ctx, latest.ID)
	if err != nil {
		return VehicleStatusReport{}, err
	}

	return VehicleStatusReport{Vehicle: vehicle, Order: latest, History: history}, nil
}

// autoAssign gathers live technician workloads and applies the selection
// policy. Failures here only log: an order without a technician is valid.
func (u *ServiceOrderUseCase) autoAssign(ctx context.Context) (entities.Technician, bool) {
	active, err := u.technicians.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("[order][usecase] listing active technicians failed")
		return entities.Technician{}, false
	}

	loads := make([]entities.TechnicianLoad, 0, len(active))
	for _, tech := range active {
		assigned, err := u.orders.ListByTechnicianID(ctx, tech.ID)
		if err != nil {
			log.WithError(err).Errorf("[order][usecase] loading workload for technician=%s failed", tech.ID)
			return entities.Technician{}, false
		}
		loads = append(loads, entities.TechnicianLoad{Technician: tech, OpenOrders: countOpenOrders(assigned)})
	}

	return SelectTechnician(loads)
}

// notifyTransition fans out the customer-facing side effects of a state
// change. The owning vehicle is resolved best-effort: if it cannot be loaded
// the business result stands and the notifications are skipped.
func (u *ServiceOrderUseCase) notifyTransition(ctx context.Context, order entities.ServiceOrder, previous entities.OrderState, completed bool) {
	vehicle, err := u.vehicles.GetByID(ctx, order.VehicleID)
	if err != nil || vehicle.ID == "" {
		log.WithError(err).Warnf("[order][usecase] vehicle=%s unresolved, skipping notifications for order=%s", order.VehicleID, order.ID)
		return
	}

	if completed {
		u.dispatcher.NotifyCompletion(ctx, order, vehicle)
		u.realtime.NotifyCompletion(order, vehicle)
		return
	}
	u.dispatcher.NotifyStateChange(ctx, order, vehicle, previous)
	u.realtime.NotifyStateChange(order, vehicle, previous)
}
