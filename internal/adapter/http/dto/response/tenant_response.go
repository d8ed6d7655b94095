package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
)

type TenantResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	OwnerName          string    `json:"owner_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Address            string    `json:"address,omitempty"`
	Description        string    `json:"description,omitempty"`
	Website            string    `json:"website,omitempty"`
	BusinessHoursOpen  string    `json:"business_hours_open,omitempty"`
	BusinessHoursClose string    `json:"business_hours_close,omitempty"`
	ServiceTaxRate     float64   `json:"service_tax_rate"`
	InvoiceTemplate    string    `json:"invoice_template,omitempty"`
	EmailNotifications bool      `json:"email_notifications"`
	SMSNotifications   bool      `json:"sms_notifications"`
	Package            string    `json:"package"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		OwnerName:          t.OwnerName,
		Email:              t.Email,
		Phone:              t.Phone,
		Address:            t.Address,
		Description:        t.Description,
		Website:            t.Website,
		BusinessHoursOpen:  t.BusinessHoursOpen,
		BusinessHoursClose: t.BusinessHoursClose,
		ServiceTaxRate:     t.ServiceTaxRate,
		InvoiceTemplate:    t.InvoiceTemplate,
		EmailNotifications: t.EmailNotifications,
		SMSNotifications:   t.SMSNotifications,
		Package:            string(t.Package),
		Status:             string(t.Status),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func FromTenants(tenants []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, FromTenant(t))
	}
	return out
}
