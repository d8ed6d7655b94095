package interfaces

import (
	"context"

	"bengkel_manager/internal/domain/entities"
)

// ICostRepository abstracts DynamoDB persistence for operational Cost records.

type ICostRepository interface {
	Create(ctx context.Context, c entities.Cost) (entities.Cost, error)
	GetByID(ctx context.Context, id string) (entities.Cost, error)
	Update(ctx context.Context, c entities.Cost) (entities.Cost, error)
	Delete(ctx context.Context, id string) error
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Cost, error)
}
