package response

import (
	"time"

	"autofixpro/internal/domain/entities"
)

type TechnicianResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:        t.ID,
		Name:      t.Name,
		Specialty: t.Specialty,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type TechnicianWorkloadResponse struct {
	TechnicianResponse
	OpenOrders int `json:"open_orders"`
}

func FromTechnicianLoads(loads []entities.TechnicianLoad) []TechnicianWorkloadResponse {
	out := make([]TechnicianWorkloadResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, TechnicianWorkloadResponse{
			TechnicianResponse: FromTechnician(l.Technician),
			OpenOrders:         l.OpenOrders,
		})
	}
	return out
}
