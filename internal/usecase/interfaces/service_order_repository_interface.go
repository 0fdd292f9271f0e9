package interfaces

import (
	"context"
	"time"

	"autofixpro/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Contract shared by all repositories: lookups return a zero-value entity
// (empty ID) when nothing matches; only infrastructure failures surface as
// errors.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	UpdateState(ctx context.Context, id string, state entities.OrderState, deliveredAt *time.Time) (entities.ServiceOrder, error)
	AssignTechnician(ctx context.Context, id string, technicianID string) (entities.ServiceOrder, error)
	ListByState(ctx context.Context, state entities.OrderState) ([]entities.ServiceOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error)
}
