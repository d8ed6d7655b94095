package request

import (
	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"
)

type OrderItemRequest struct {
	SparepartID string `json:"sparepart_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// ServiceOrderRequest is the intake/edit form. Money fields come from text
// inputs, hence FormNumber.
type ServiceOrderRequest struct {
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone"`
	LicensePlate  string             `json:"license_plate"`
	VehicleBrand  string             `json:"vehicle_brand"`
	VehicleModel  string             `json:"vehicle_model"`
	VehicleYear   int                `json:"vehicle_year"`
	VehicleKM     int                `json:"vehicle_km"`
	Complaint     string             `json:"complaint"`
	Technician    string             `json:"technician"`
	Status        string             `json:"status"`
	Progress      int                `json:"progress"`
	EstimatedCost FormNumber         `json:"estimated_cost"`
	ServiceFee    FormNumber         `json:"service_fee"`
	Items         []OrderItemRequest `json:"items"`
}

func (r ServiceOrderRequest) ToInput() usecase.ServiceOrderInput {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{
			SparepartID: it.SparepartID,
			Quantity:    it.Quantity,
		})
	}
	return usecase.ServiceOrderInput{
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		LicensePlate:  r.LicensePlate,
		VehicleBrand:  r.VehicleBrand,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		VehicleKM:     r.VehicleKM,
		Complaint:     r.Complaint,
		Technician:    r.Technician,
		Status:        entities.OrderStatus(r.Status),
		Progress:      r.Progress,
		EstimatedCost: r.EstimatedCost.Float64(),
		ServiceFee:    r.ServiceFee.Float64(),
		Items:         items,
	}
}
