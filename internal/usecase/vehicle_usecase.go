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
	ErrVehicleAlreadyRegistered = errors.New("vehicle already registered")
	ErrMissingOwnerContact      = errors.New("missing owner contact")
)

// IVehicleUseCase registers customer vehicles. Owner contact data lives on
// the vehicle so the notification channels resolve recipients in one lookup.

type IVehicleUseCase interface {
	Register(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
}

type VehicleUseCase struct {
	vehicles interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(vehicles interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{vehicles: vehicles}
}

func (u *VehicleUseCase) Register(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" {
		return entities.Vehicle{}, ErrInvalidPlate
	}
	if strings.TrimSpace(v.Owner.Email) == "" && strings.TrimSpace(v.Owner.Phone) == "" {
		return entities.Vehicle{}, ErrMissingOwnerContact
	}

	existing, err := u.vehicles.GetByPlate(ctx, v.Plate)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID != "" {
		return entities.Vehicle{}, ErrVehicleAlreadyRegistered
	}

	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	return u.vehicles.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	vehicle, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if vehicle.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return vehicle, nil
}

func (u *VehicleUseCase) GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return entities.Vehicle{}, ErrInvalidPlate
	}

	vehicle, err := u.vehicles.GetByPlate(ctx, plate)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if vehicle.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return vehicle, nil
}
