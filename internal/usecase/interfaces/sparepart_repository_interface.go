package interfaces

import (
	"context"

	"bengkel_manager/internal/domain/entities"
)

// ISparepartRepository abstracts DynamoDB persistence for Sparepart.
//
// AdjustStock applies a signed delta with a conditional check so stock can
// never go negative even when two staff members edit orders concurrently.

type ISparepartRepository interface {
	Create(ctx context.Context, s entities.Sparepart) (entities.Sparepart, error)
	GetByID(ctx context.Context, id string) (entities.Sparepart, error)
	Update(ctx context.Context, s entities.Sparepart) (entities.Sparepart, error)
	Delete(ctx context.Context, id string) error
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Sparepart, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Sparepart, error)
}
