package request

type CostRequest struct {
	CostName string     `json:"cost_name" binding:"required"`
	Amount   FormNumber `json:"amount" binding:"required"`
	CostDate string     `json:"cost_date"`
	Notes    string     `json:"notes"`
}
