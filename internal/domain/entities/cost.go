package entities

import "time"

// Cost is a tenant-scoped operational expense record (rent, utilities,
// consumables). It feeds the expense side of the financial report together
// with the purchase cost of consumed spareparts.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
type Cost struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	CostName  string    `json:"cost_name"`
	Amount    float64   `json:"amount"`
	CostDate  time.Time `json:"cost_date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
