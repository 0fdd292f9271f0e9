package entities

import "time"

// OwnerContact is the customer contact data the notification channels need.
// It is denormalized onto the vehicle item so order-side flows resolve the
// recipient with a single lookup.
type OwnerContact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Username string `json:"username,omitempty"`
}

// Vehicle is a customer's registered vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plate-index): plate
type Vehicle struct {
	ID        string       `json:"id"`
	Plate     string       `json:"plate"`
	Brand     string       `json:"brand"`
	Model     string       `json:"model"`
	Year      int          `json:"year,omitempty"`
	Owner     OwnerContact `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
}
