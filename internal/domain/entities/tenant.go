package entities

import "time"

// TenantStatus is the subscription lifecycle of a workshop tenant.
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "Active"
	TenantStatusTrial     TenantStatus = "Trial"
	TenantStatusSuspended TenantStatus = "Suspended"
)

// TenantPackage is the subscription tier managed from the super-admin panel.
type TenantPackage string

const (
	TenantPackageBasic    TenantPackage = "Basic"
	TenantPackageStandard TenantPackage = "Standard"
	TenantPackagePremium  TenantPackage = "Premium"
)

// Tenant is one workshop's isolated data partition.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ServiceTaxRate is a percentage read at service-order save time. Orders keep
// their own snapshot of the rate, so changing it here never rewrites the
// totals of existing orders.
type Tenant struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	OwnerName          string        `json:"owner_name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone,omitempty"`
	Address            string        `json:"address,omitempty"`
	Description        string        `json:"description,omitempty"`
	Website            string        `json:"website,omitempty"`
	BusinessHoursOpen  string        `json:"business_hours_open,omitempty"`
	BusinessHoursClose string        `json:"business_hours_close,omitempty"`
	ServiceTaxRate     float64       `json:"service_tax_rate"`
	InvoiceTemplate    string        `json:"invoice_template,omitempty"`
	EmailNotifications bool          `json:"email_notifications"`
	SMSNotifications   bool          `json:"sms_notifications"`
	Package            TenantPackage `json:"package"`
	Status             TenantStatus  `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
