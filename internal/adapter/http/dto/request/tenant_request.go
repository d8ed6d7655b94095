package request

// TenantSettingsRequest covers both workshop registration and the owner's
// settings page.
type TenantSettingsRequest struct {
	Name               string     `json:"name" binding:"required"`
	OwnerName          string     `json:"owner_name"`
	Email              string     `json:"email" binding:"required"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	Description        string     `json:"description"`
	Website            string     `json:"website"`
	BusinessHoursOpen  string     `json:"business_hours_open"`
	BusinessHoursClose string     `json:"business_hours_close"`
	ServiceTaxRate     FormNumber `json:"service_tax_rate"`
	InvoiceTemplate    string     `json:"invoice_template"`
	EmailNotifications bool       `json:"email_notifications"`
	SMSNotifications   bool       `json:"sms_notifications"`
}

type TenantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TenantPackageRequest struct {
	Package string `json:"package" binding:"required"`
}
