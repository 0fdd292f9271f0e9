package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTechnicianNotFound    = errors.New("technician not found")
	ErrMissingTechnicianName = errors.New("missing technician name")
)

// ITechnicianUseCase manages workshop staff eligible for order assignment.

type ITechnicianUseCase interface {
	Register(ctx context.Context, name, specialty string) (entities.Technician, error)
	ListWithWorkload(ctx context.Context) ([]entities.TechnicianLoad, error)
	Deactivate(ctx context.Context, id string) (entities.Technician, error)
	Reactivate(ctx context.Context, id string) (entities.Technician, error)
}

type TechnicianUseCase struct {
	technicians interfaces.ITechnicianRepository
	orders      interfaces.IServiceOrderRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(technicians interfaces.ITechnicianRepository, orders interfaces.IServiceOrderRepository) *TechnicianUseCase {
	return &TechnicianUseCase{technicians: technicians, orders: orders}
}

// Register creates a technician. New technicians start active.
func (u *TechnicianUseCase) Register(ctx context.Context, name, specialty string) (entities.Technician, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Technician{}, ErrMissingTechnicianName
	}

	now := time.Now().UTC()
	tech := entities.Technician{
		ID:        uuid.NewString(),
		Name:      name,
		Specialty: strings.TrimSpace(specialty),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.technicians.Create(ctx, tech)
}

// ListWithWorkload returns every technician together with their live
// open-order count, the same figure the assignment policy uses.
func (u *TechnicianUseCase) ListWithWorkload(ctx context.Context) ([]entities.TechnicianLoad, error) {
	all, err := u.technicians.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	loads := make([]entities.TechnicianLoad, 0, len(all))
	for _, tech := range all {
		assigned, err := u.orders.ListByTechnicianID(ctx, tech.ID)
		if err != nil {
			return nil, err
		}
		loads = append(loads, entities.TechnicianLoad{Technician: tech, OpenOrders: countOpenOrders(assigned)})
	}
	return loads, nil
}

func (u *TechnicianUseCase) Deactivate(ctx context.Context, id string) (entities.Technician, error) {
	return u.setActive(ctx, id, false)
}

func (u *TechnicianUseCase) Reactivate(ctx context.Context, id string) (entities.Technician, error) {
	return u.setActive(ctx, id, true)
}

func (u *TechnicianUseCase) setActive(ctx context.Context, id string, active bool) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}

	updated, err := u.technicians.SetActive(ctx, id, active)
	if err != nil {
		return entities.Technician{}, err
	}
	if updated.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return updated, nil
}
