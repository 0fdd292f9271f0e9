package request

import "autofixpro/internal/domain/entities"

type OwnerContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
}

// RegisterVehicleRequest registers a customer vehicle along with the contact
// data the notification channels will use.
type RegisterVehicleRequest struct {
	Plate string              `json:"plate" binding:"required"`
	Brand string              `json:"brand" binding:"required"`
	Model string              `json:"model" binding:"required"`
	Year  int                 `json:"year"`
	Owner OwnerContactRequest `json:"owner" binding:"required"`
}

func (r RegisterVehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		Plate: r.Plate,
		Brand: r.Brand,
		Model: r.Model,
		Year:  r.Year,
		Owner: entities.OwnerContact{
			Name:     r.Owner.Name,
			Email:    r.Owner.Email,
			Phone:    r.Owner.Phone,
			Username: r.Owner.Username,
		},
	}
}
