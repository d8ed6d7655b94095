package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
)

type CostResponse struct {
	ID        string    `json:"id"`
	CostName  string    `json:"cost_name"`
	Amount    float64   `json:"amount"`
	CostDate  time.Time `json:"cost_date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCost(c entities.Cost) CostResponse {
	return CostResponse{
		ID:        c.ID,
		CostName:  c.CostName,
		Amount:    c.Amount,
		CostDate:  c.CostDate,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCosts(costs []entities.Cost) []CostResponse {
	out := make([]CostResponse, 0, len(costs))
	for _, c := range costs {
		out = append(out, FromCost(c))
	}
	return out
}
