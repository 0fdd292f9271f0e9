package entities

import "time"

// Technician is a staff member who can be assigned service orders.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only active technicians are eligible for auto-assignment. Technicians are
// deactivated rather than deleted so historical orders keep a valid
// reference.
type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TechnicianLoad pairs a technician with their current count of open orders
// (assigned orders whose state is neither COMPLETED nor DELIVERED). It is the
// input to the assignment policy.
type TechnicianLoad struct {
	Technician Technician
	OpenOrders int
}
