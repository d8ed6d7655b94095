package entities

import "time"

// Role gates dashboard surfaces: staff operate the workshop, owners also
// manage tenant settings, super admins manage tenants across the platform.
type Role string

const (
	RoleStaff      Role = "staff"
	RoleOwner      Role = "owner"
	RoleSuperAdmin Role = "superadmin"
)

// Profile is a dashboard user bound to a tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
//
// Super admins have an empty TenantID; every other role must carry one.
// Claims is the authenticated identity carried by a session token. TenantID
// scopes every data access; handlers never accept a tenant id from the
// request body.
type Claims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Exp      int64  `json:"exp"`
}

type Profile struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id,omitempty"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
