package interfaces

import (
	"context"

	"bengkel_manager/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The ledger is append-only: there is deliberately no update or delete.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Payment, error)
}
