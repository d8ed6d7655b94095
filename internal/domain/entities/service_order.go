package entities

import "time"

// OrderStatus is the workshop-floor lifecycle of a service order.
type OrderStatus string

const (
	OrderStatusQueued     OrderStatus = "Queued"
	OrderStatusInProgress OrderStatus = "InProgress"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// PaymentStatus is derived from cumulative payments against GrandTotal.
// It is never edited directly; the settlement resolver recomputes it on
// every payment insertion.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// ServiceOrder is one repair job for one customer's vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
//
// Cost snapshot:
//   - SparePartsTotal, ServiceFee, TaxRatePercent, TaxAmount and GrandTotal
//     are computed once at save time from the line items and the tenant's
//     tax rate at that moment, then persisted. Invoices and settlements read
//     the stored values and never recompute from live sparepart prices, so
//     historical invoices stay stable when prices or the tax rate change.
type ServiceOrder struct {
	ID            string `json:"id"`
	TenantID      string `json:"tenant_id"`
	ServiceNumber string `json:"service_number"`

	// Customer/vehicle snapshot taken at intake.
	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	LicensePlate  string `json:"license_plate,omitempty"`
	VehicleBrand  string `json:"vehicle_brand,omitempty"`
	VehicleModel  string `json:"vehicle_model,omitempty"`
	VehicleYear   int    `json:"vehicle_year,omitempty"`
	VehicleKM     int    `json:"vehicle_km,omitempty"`

	Complaint  string      `json:"complaint,omitempty"`
	Technician string      `json:"technician,omitempty"`
	Status     OrderStatus `json:"status"`
	Progress   int         `json:"progress"`

	EstimatedCost   float64 `json:"estimated_cost,omitempty"`
	SparePartsTotal float64 `json:"spareparts_total"`
	ServiceFee      float64 `json:"service_fee"`
	TaxRatePercent  float64 `json:"tax_rate"`
	TaxAmount       float64 `json:"tax_amount"`
	GrandTotal      float64 `json:"grand_total"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceLineItem is one sparepart quantity consumed by a service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_id-index): service_id
//
// UnitPrice is copied from the sparepart's selling price at add time.
// The whole set is deleted and reinserted when an order is edited.
type ServiceLineItem struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	SparepartID string    `json:"sparepart_id"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}
