package usecase

import (
	"context"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const intakeObservation = "vehicle admitted for diagnosis"

// IStatusTracker maintains the append-only ledger of an order's progress.

type IStatusTracker interface {
	RecordIntake(ctx context.Context, order entities.ServiceOrder) (entities.StatusSnapshot, error)
	RecordTransition(ctx context.Context, order entities.ServiceOrder, newState entities.OrderState, observations string) (entities.StatusSnapshot, error)
	History(ctx context.Context, orderID string) ([]entities.StatusSnapshot, error)
}

type StatusTracker struct {
	snapshots interfaces.IStatusSnapshotRepository
}

var _ IStatusTracker = (*StatusTracker)(nil)

func NewStatusTracker(snapshots interfaces.IStatusSnapshotRepository) *StatusTracker {
	return &StatusTracker{snapshots: snapshots}
}

// RecordIntake writes the first snapshot for a freshly created order. The
// intake snapshot is pinned at progress 0 ("vehicle just arrived") even
// though RECEIVED maps to 10 in the transition table; the first real
// transition picks up the table value.
func (t *StatusTracker) RecordIntake(ctx context.Context, order entities.ServiceOrder) (entities.StatusSnapshot, error) {
	snapshot := entities.StatusSnapshot{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		State:        string(entities.OrderStateReceived),
		Description:  "Vehicle received at the workshop",
		Progress:     0,
		Observations: intakeObservation,
		RecordedAt:   time.Now().UTC(),
	}
	return t.snapshots.Create(ctx, snapshot)
}

// RecordTransition appends a snapshot for a state change, with progress taken
// from the shared state table.
func (t *StatusTracker) RecordTransition(ctx context.Context, order entities.ServiceOrder, newState entities.OrderState, observations string) (entities.StatusSnapshot, error) {
	snapshot := entities.StatusSnapshot{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		State:        string(newState),
		Description:  newState.Description(),
		Progress:     newState.Progress(),
		Observations: observations,
		RecordedAt:   time.Now().UTC(),
	}
	return t.snapshots.Create(ctx, snapshot)
}

func (t *StatusTracker) History(ctx context.Context, orderID string) ([]entities.StatusSnapshot, error) {
	return t.snapshots.ListByOrderID(ctx, orderID)
}
