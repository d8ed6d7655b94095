package entities

import "time"

// Sparepart is one inventory item in a tenant's catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
//
// SellingPrice is what a service-order line item copies at add time;
// PurchasePrice feeds the expense side of the financial report.
type Sparepart struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Description   string    `json:"description,omitempty"`
	Stock         int       `json:"stock"`
	MinimumStock  int       `json:"minimum_stock"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	Location      string    `json:"location,omitempty"`
	Supplier      string    `json:"supplier,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LowOnStock reports whether the item is at or below its restock threshold.
func (s Sparepart) LowOnStock() bool {
	return s.Stock <= s.MinimumStock
}
