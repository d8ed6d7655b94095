package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers for non-cash methods.
//
// The settlement flow uses it to charge the payer online before appending to
// the payment ledger, and persists the provider response payload for
// traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
