package response

import (
	"time"

	"autofixpro/internal/domain/entities"
)

type OwnerContactResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username,omitempty"`
}

type VehicleResponse struct {
	ID        string               `json:"id"`
	Plate     string               `json:"plate"`
	Brand     string               `json:"brand"`
	Model     string               `json:"model"`
	Year      int                  `json:"year,omitempty"`
	Owner     OwnerContactResponse `json:"owner"`
	CreatedAt time.Time            `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:    v.ID,
		Plate: v.Plate,
		Brand: v.Brand,
		Model: v.Model,
		Year:  v.Year,
		Owner: OwnerContactResponse{
			Name:     v.Owner.Name,
			Email:    v.Owner.Email,
			Phone:    v.Owner.Phone,
			Username: v.Owner.Username,
		},
		CreatedAt: v.CreatedAt,
	}
}
