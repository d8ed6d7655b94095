package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
)

type SparepartResponse struct {
	ID            string    `json:"id"`
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
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromSparepart(s entities.Sparepart) SparepartResponse {
	return SparepartResponse{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		Category:      s.Category,
		Brand:         s.Brand,
		Description:   s.Description,
		Stock:         s.Stock,
		MinimumStock:  s.MinimumStock,
		PurchasePrice: s.PurchasePrice,
		SellingPrice:  s.SellingPrice,
		Location:      s.Location,
		Supplier:      s.Supplier,
		LowStock:      s.LowOnStock(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromSpareparts(spareparts []entities.Sparepart) []SparepartResponse {
	out := make([]SparepartResponse, 0, len(spareparts))
	for _, s := range spareparts {
		out = append(out, FromSparepart(s))
	}
	return out
}
