package interfaces

import (
	"context"

	"bengkel_manager/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Customer, error)
}

// IVehicleRepository abstracts DynamoDB persistence for CustomerVehicle.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.CustomerVehicle) (entities.CustomerVehicle, error)
	GetByID(ctx context.Context, id string) (entities.CustomerVehicle, error)
	Update(ctx context.Context, v entities.CustomerVehicle) (entities.CustomerVehicle, error)
	Delete(ctx context.Context, id string) error
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.CustomerVehicle, error)
}
