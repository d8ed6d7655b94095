package request

// RecordPaymentRequest settles part or all of a service order's balance.
// CashReceived only matters for the Cash method.
type RecordPaymentRequest struct {
	Amount        FormNumber `json:"amount" binding:"required"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	CashReceived  FormNumber `json:"cash_received"`
	Notes         string     `json:"notes"`
}
