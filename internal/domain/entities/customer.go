package entities

import "time"

// Customer is a tenant-scoped customer record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
type Customer struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	CustomerCode string    `json:"customer_code"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
