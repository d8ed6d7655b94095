package request

type SparepartRequest struct {
	Code          string     `json:"code" binding:"required"`
	Name          string     `json:"name" binding:"required"`
	Category      string     `json:"category"`
	Brand         string     `json:"brand"`
	Description   string     `json:"description"`
	Stock         int        `json:"stock"`
	MinimumStock  int        `json:"minimum_stock"`
	PurchasePrice FormNumber `json:"purchase_price"`
	SellingPrice  FormNumber `json:"selling_price"`
	Location      string     `json:"location"`
	Supplier      string     `json:"supplier"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
