package interfaces

import (
	"context"

	"bengkel_manager/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.
//
// List is the super-admin panel view across every workshop; everything else
// is per-tenant.

type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
}
