package interfaces

import (
	"context"

	"autofixpro/internal/domain/entities"
)

// ITechnicianRepository abstracts DynamoDB persistence for Technician.

type ITechnicianRepository interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	ListAll(ctx context.Context) ([]entities.Technician, error)
	ListActive(ctx context.Context) ([]entities.Technician, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Technician, error)
}
