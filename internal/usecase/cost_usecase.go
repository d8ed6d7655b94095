package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCostID   = errors.New("invalid cost id")
	ErrInvalidCostName = errors.New("invalid cost name")
	ErrCostNotFound    = errors.New("cost not found")
)

// CostInput carries operational expense submissions.
type CostInput struct {
	CostName string
	Amount   float64
	CostDate time.Time
	Notes    string
}

// ICostUseCase exposes operational cost tracking.

type ICostUseCase interface {
	Create(ctx context.Context, tenantID string, in CostInput) (entities.Cost, error)
	Update(ctx context.Context, tenantID, id string, in CostInput) (entities.Cost, error)
	Delete(ctx context.Context, tenantID, id string) error
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Cost, error)
}

type CostUseCase struct {
	repo interfaces.ICostRepository
}

var _ ICostUseCase = (*CostUseCase)(nil)

func NewCostUseCase(repo interfaces.ICostRepository) *CostUseCase {
	return &CostUseCase{repo: repo}
}

func (u *CostUseCase) Create(ctx context.Context, tenantID string, in CostInput) (entities.Cost, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Cost{}, ErrInvalidTenantID
	}
	if err := validateCostInput(in); err != nil {
		return entities.Cost{}, err
	}

	now := time.Now().UTC()
	costDate := in.CostDate
	if costDate.IsZero() {
		costDate = now
	}
	c := entities.Cost{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		CostName:  strings.TrimSpace(in.CostName),
		Amount:    in.Amount,
		CostDate:  costDate.UTC(),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CostUseCase) Update(ctx context.Context, tenantID, id string, in CostInput) (entities.Cost, error) {
	existing, err := u.getOwned(ctx, tenantID, id)
	if err != nil {
		return entities.Cost{}, err
	}
	if err := validateCostInput(in); err != nil {
		return entities.Cost{}, err
	}

	existing.CostName = strings.TrimSpace(in.CostName)
	existing.Amount = in.Amount
	if !in.CostDate.IsZero() {
		existing.CostDate = in.CostDate.UTC()
	}
	existing.Notes = strings.TrimSpace(in.Notes)
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *CostUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.getOwned(ctx, tenantID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *CostUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.Cost, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *CostUseCase) getOwned(ctx context.Context, tenantID, id string) (entities.Cost, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Cost{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Cost{}, ErrInvalidCostID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cost{}, err
	}
	if c.ID == "" || c.TenantID != tenantID {
		return entities.Cost{}, ErrCostNotFound
	}
	return c, nil
}

func validateCostInput(in CostInput) error {
	if strings.TrimSpace(in.CostName) == "" {
		return ErrInvalidCostName
	}
	if in.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
