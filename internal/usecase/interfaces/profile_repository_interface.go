package interfaces

import (
	"context"

	"bengkel_manager/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (entities.Profile, error)
	Update(ctx context.Context, p entities.Profile) (entities.Profile, error)
}
