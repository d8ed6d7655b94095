package interfaces

import (
	"context"
	"time"

	"bengkel_manager/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder and
// its line items.
//
// ReplaceLineItems deletes the whole previous set and reinserts the new one;
// line items are never diffed. UpdatePaymentStatus only touches the derived
// settlement fields so the cost snapshot stays immutable after save.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, paymentDate *time.Time) (entities.ServiceOrder, error)
	ReplaceLineItems(ctx context.Context, serviceID string, items []entities.ServiceLineItem) error
	ListLineItems(ctx context.Context, serviceID string) ([]entities.ServiceLineItem, error)
}
