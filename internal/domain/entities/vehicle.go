package entities

import "time"

// CustomerVehicle is a vehicle owned by a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (customer_id-index): customer_id
type CustomerVehicle struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	LicensePlate  string    `json:"license_plate,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	Year          int       `json:"year,omitempty"`
	Color         string    `json:"color,omitempty"`
	ChassisNumber string    `json:"chassis_number,omitempty"`
	EngineNumber  string    `json:"engine_number,omitempty"`
	IsPrimary     bool      `json:"is_primary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
