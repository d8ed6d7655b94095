package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	SparepartID string  `json:"sparepart_id"`
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type ServiceOrderResponse struct {
	ID            string `json:"id"`
	ServiceNumber string `json:"service_number"`

	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	LicensePlate  string `json:"license_plate,omitempty"`
	VehicleBrand  string `json:"vehicle_brand,omitempty"`
	VehicleModel  string `json:"vehicle_model,omitempty"`
	VehicleYear   int    `json:"vehicle_year,omitempty"`
	VehicleKM     int    `json:"vehicle_km,omitempty"`

	Complaint  string `json:"complaint,omitempty"`
	Technician string `json:"technician,omitempty"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`

	EstimatedCost   float64 `json:"estimated_cost,omitempty"`
	SparePartsTotal float64 `json:"spareparts_total"`
	ServiceFee      float64 `json:"service_fee"`
	TaxRate         float64 `json:"tax_rate"`
	TaxAmount       float64 `json:"tax_amount"`
	GrandTotal      float64 `json:"grand_total"`

	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceOrderDetailResponse struct {
	ServiceOrderResponse
	Items []LineItemResponse `json:"items"`
}

func FromLineItem(it entities.ServiceLineItem) LineItemResponse {
	return LineItemResponse{
		ID:          it.ID,
		SparepartID: it.SparepartID,
		ItemName:    it.ItemName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		LineTotal:   it.LineTotal,
	}
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:              o.ID,
		ServiceNumber:   o.ServiceNumber,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		LicensePlate:    o.LicensePlate,
		VehicleBrand:    o.VehicleBrand,
		VehicleModel:    o.VehicleModel,
		VehicleYear:     o.VehicleYear,
		VehicleKM:       o.VehicleKM,
		Complaint:       o.Complaint,
		Technician:      o.Technician,
		Status:          string(o.Status),
		Progress:        o.Progress,
		EstimatedCost:   o.EstimatedCost,
		SparePartsTotal: o.SparePartsTotal,
		ServiceFee:      o.ServiceFee,
		TaxRate:         o.TaxRatePercent,
		TaxAmount:       o.TaxAmount,
		GrandTotal:      o.GrandTotal,
		PaymentStatus:   string(o.PaymentStatus),
		PaymentDate:     o.PaymentDate,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

func FromServiceOrderDetail(d usecase.ServiceOrderDetail) ServiceOrderDetailResponse {
	items := make([]LineItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, FromLineItem(it))
	}
	return ServiceOrderDetailResponse{
		ServiceOrderResponse: FromServiceOrder(d.Order),
		Items:                items,
	}
}
