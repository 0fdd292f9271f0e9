package interfaces

import (
	"context"

	"autofixpro/internal/domain/entities"
)

// IStatusSnapshotRepository abstracts DynamoDB persistence for the
// append-only status history. There are deliberately no update or delete
// operations: snapshots are immutable once written.

type IStatusSnapshotRepository interface {
	Create(ctx context.Context, s entities.StatusSnapshot) (entities.StatusSnapshot, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.StatusSnapshot, error)
}
