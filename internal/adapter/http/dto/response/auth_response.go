package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id,omitempty"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:   r.Token,
		Profile: FromProfile(r.Profile),
	}
}
