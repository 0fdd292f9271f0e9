package request

type RegisterTechnicianRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}
