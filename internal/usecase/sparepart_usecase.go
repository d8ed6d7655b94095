package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSparepartID   = errors.New("invalid sparepart id")
	ErrInvalidSparepartName = errors.New("invalid sparepart name")
	ErrInvalidSparepartCode = errors.New("invalid sparepart code")
	ErrInvalidStock         = errors.New("invalid stock value")
	ErrInvalidRestockQty    = errors.New("invalid restock quantity")
	ErrNegativePrice        = errors.New("negative price")
)

// SparepartInput carries catalog create/update submissions.
type SparepartInput struct {
	Code          string
	Name          string
	Category      string
	Brand         string
	Description   string
	Stock         int
	MinimumStock  int
	PurchasePrice float64
	SellingPrice  float64
	Location      string
	Supplier      string
}

// ISparepartUseCase exposes the tenant's inventory catalog operations.

type ISparepartUseCase interface {
	Create(ctx context.Context, tenantID string, in SparepartInput) (entities.Sparepart, error)
	Update(ctx context.Context, tenantID, id string, in SparepartInput) (entities.Sparepart, error)
	Delete(ctx context.Context, tenantID, id string) error
	GetByID(ctx context.Context, tenantID, id string) (entities.Sparepart, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Sparepart, error)
	ListLowStock(ctx context.Context, tenantID string) ([]entities.Sparepart, error)
	Restock(ctx context.Context, tenantID, id string, quantity int) (entities.Sparepart, error)
}

type SparepartUseCase struct {
	repo interfaces.ISparepartRepository
	log  *logrus.Logger
}

var _ ISparepartUseCase = (*SparepartUseCase)(nil)

func NewSparepartUseCase(repo interfaces.ISparepartRepository, log *logrus.Logger) *SparepartUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SparepartUseCase{repo: repo, log: log}
}

func (u *SparepartUseCase) Create(ctx context.Context, tenantID string, in SparepartInput) (entities.Sparepart, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Sparepart{}, ErrInvalidTenantID
	}
	if err := validateSparepartInput(in); err != nil {
		return entities.Sparepart{}, err
	}

	now := time.Now().UTC()
	s := entities.Sparepart{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Code:          strings.TrimSpace(in.Code),
		Name:          strings.TrimSpace(in.Name),
		Category:      strings.TrimSpace(in.Category),
		Brand:         strings.TrimSpace(in.Brand),
		Description:   strings.TrimSpace(in.Description),
		Stock:         in.Stock,
		MinimumStock:  in.MinimumStock,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Location:      strings.TrimSpace(in.Location),
		Supplier:      strings.TrimSpace(in.Supplier),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, s)
}

func (u *SparepartUseCase) Update(ctx context.Context, tenantID, id string, in SparepartInput) (entities.Sparepart, error) {
	existing, err := u.getOwned(ctx, tenantID, id)
	if err != nil {
		return entities.Sparepart{}, err
	}
	if err := validateSparepartInput(in); err != nil {
		return entities.Sparepart{}, err
	}

	existing.Code = strings.TrimSpace(in.Code)
	existing.Name = strings.TrimSpace(in.Name)
	existing.Category = strings.TrimSpace(in.Category)
	existing.Brand = strings.TrimSpace(in.Brand)
	existing.Description = strings.TrimSpace(in.Description)
	existing.Stock = in.Stock
	existing.MinimumStock = in.MinimumStock
	existing.PurchasePrice = in.PurchasePrice
	existing.SellingPrice = in.SellingPrice
	existing.Location = strings.TrimSpace(in.Location)
	existing.Supplier = strings.TrimSpace(in.Supplier)
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *SparepartUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.getOwned(ctx, tenantID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *SparepartUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Sparepart, error) {
	return u.getOwned(ctx, tenantID, id)
}

func (u *SparepartUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.Sparepart, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *SparepartUseCase) ListLowStock(ctx context.Context, tenantID string) ([]entities.Sparepart, error) {
	all, err := u.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	low := make([]entities.Sparepart, 0)
	for _, s := range all {
		if s.LowOnStock() {
			low = append(low, s)
		}
	}
	return low, nil
}

func (u *SparepartUseCase) Restock(ctx context.Context, tenantID, id string, quantity int) (entities.Sparepart, error) {
	if _, err := u.getOwned(ctx, tenantID, id); err != nil {
		return entities.Sparepart{}, err
	}
	if quantity <= 0 {
		return entities.Sparepart{}, ErrInvalidRestockQty
	}

	updated, err := u.repo.AdjustStock(ctx, id, quantity)
	if err != nil {
		return entities.Sparepart{}, err
	}
	u.log.WithFields(logrus.Fields{
		"tenant_id":    tenantID,
		"sparepart_id": id,
		"quantity":     quantity,
		"stock":        updated.Stock,
	}).Info("[sparepart][usecase] restocked")
	return updated, nil
}

func (u *SparepartUseCase) getOwned(ctx context.Context, tenantID, id string) (entities.Sparepart, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Sparepart{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Sparepart{}, ErrInvalidSparepartID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Sparepart{}, err
	}
	if s.ID == "" || s.TenantID != tenantID {
		return entities.Sparepart{}, ErrSparepartNotFound
	}
	return s, nil
}

func validateSparepartInput(in SparepartInput) error {
	if strings.TrimSpace(in.Code) == "" {
		return ErrInvalidSparepartCode
	}
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidSparepartName
	}
	if in.Stock < 0 || in.MinimumStock < 0 {
		return ErrInvalidStock
	}
	if in.PurchasePrice < 0 || in.SellingPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}
