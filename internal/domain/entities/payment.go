package entities

import "time"

// PaymentMethod is the fixed set of settlement channels.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "BankTransfer"
	PaymentMethodEWallet      PaymentMethod = "EWallet"
	PaymentMethodCreditCard   PaymentMethod = "CreditCard"
	PaymentMethodDebitCard    PaymentMethod = "DebitCard"
)

// ValidPaymentMethod reports whether m is one of the supported channels.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodEWallet,
		PaymentMethodCreditCard, PaymentMethodDebitCard:
		return true
	}
	return false
}

// Payment is one settlement event against a service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_id-index): service_id
//
// Payments are append-only and immutable once created; correcting a mistake
// requires a new record. Status is always "Completed" on creation — there is
// no pending/partial payment lifecycle.
//
// Provider payload:
//   - ProviderPaymentID/ProviderResponse keep the gateway response (JSON) for
//     traceability when a non-cash method is charged online.
type Payment struct {
	ID                string        `json:"id"`
	TenantID          string        `json:"tenant_id"`
	ServiceID         string        `json:"service_id"`
	PaymentNumber     string        `json:"payment_number"`
	Amount            float64       `json:"amount"`
	Method            PaymentMethod `json:"payment_method"`
	Status            string        `json:"status"`
	Notes             string        `json:"notes,omitempty"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	ProviderResponse  []byte        `json:"provider_response,omitempty"`
	PaymentDate       time.Time     `json:"payment_date"`
	CreatedAt         time.Time     `json:"created_at"`
}

// PaymentStatusCompleted is the only status a Payment record ever carries.
const PaymentStatusCompleted = "Completed"
