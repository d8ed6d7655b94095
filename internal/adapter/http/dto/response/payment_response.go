package response

import (
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"
)

type PaymentResponse struct {
	ID                string    `json:"id"`
	ServiceID         string    `json:"service_id"`
	PaymentNumber     string    `json:"payment_number"`
	Amount            float64   `json:"amount"`
	PaymentMethod     string    `json:"payment_method"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	PaymentDate       time.Time `json:"payment_date"`
	CreatedAt         time.Time `json:"created_at"`
}

// SettlementResponse is the receipt returned after recording a payment.
type SettlementResponse struct {
	Payment       PaymentResponse `json:"payment"`
	PaymentStatus string          `json:"payment_status"`
	TotalPaid     float64         `json:"total_paid"`
	Remaining     float64         `json:"remaining"`
	ChangeDue     float64         `json:"change_due"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		ServiceID:         p.ServiceID,
		PaymentNumber:     p.PaymentNumber,
		Amount:            p.Amount,
		PaymentMethod:     string(p.Method),
		Status:            p.Status,
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		PaymentDate:       p.PaymentDate,
		CreatedAt:         p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

func FromSettlement(r usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{
		Payment:       FromPayment(r.Payment),
		PaymentStatus: string(r.Status),
		TotalPaid:     r.TotalPaid,
		Remaining:     r.Remaining,
		ChangeDue:     r.ChangeDue,
	}
}
