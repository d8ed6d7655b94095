package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
)

type CustomerResponse struct {
	ID           string    `json:"id"`
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

type VehicleResponse struct {
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
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		CustomerCode: c.CustomerCode,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Gender:       c.Gender,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

func FromVehicle(v entities.CustomerVehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		CustomerID:    v.CustomerID,
		LicensePlate:  v.LicensePlate,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		Color:         v.Color,
		ChassisNumber: v.ChassisNumber,
		EngineNumber:  v.EngineNumber,
		IsPrimary:     v.IsPrimary,
		CreatedAt:     v.CreatedAt,
	}
}

func FromVehicles(vehicles []entities.CustomerVehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
