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
	ErrInvalidTenantName   = errors.New("invalid tenant name")
	ErrInvalidTenantEmail  = errors.New("invalid tenant email")
	ErrInvalidTaxRate      = errors.New("invalid tax rate")
	ErrInvalidTenantStatus = errors.New("invalid tenant status")
	ErrInvalidPackage      = errors.New("invalid tenant package")
)

// TenantSettingsInput is the owner-editable workshop profile.
//
// ServiceTaxRate is validated to be non-negative only. Rates above 100 are
// accepted: the original system never capped the field and tenants exist
// that rely on compounding surcharges.
type TenantSettingsInput struct {
	Name               string
	OwnerName          string
	Email              string
	Phone              string
	Address            string
	Description        string
	Website            string
	BusinessHoursOpen  string
	BusinessHoursClose string
	ServiceTaxRate     float64
	InvoiceTemplate    string
	EmailNotifications bool
	SMSNotifications   bool
}

// ITenantUseCase exposes tenant settings (owner) and the cross-tenant
// administration panel (super admin).

type ITenantUseCase interface {
	Register(ctx context.Context, in TenantSettingsInput) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	UpdateSettings(ctx context.Context, id string, in TenantSettingsInput) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
	UpdateStatus(ctx context.Context, id string, status entities.TenantStatus) (entities.Tenant, error)
	UpdatePackage(ctx context.Context, id string, pkg entities.TenantPackage) (entities.Tenant, error)
}

type TenantUseCase struct {
	repo interfaces.ITenantRepository
	log  *logrus.Logger
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(repo interfaces.ITenantRepository, log *logrus.Logger) *TenantUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TenantUseCase{repo: repo, log: log}
}

func (u *TenantUseCase) Register(ctx context.Context, in TenantSettingsInput) (entities.Tenant, error) {
	if err := validateTenantInput(in); err != nil {
		return entities.Tenant{}, err
	}

	now := time.Now().UTC()
	t := entities.Tenant{
		ID:                 uuid.NewString(),
		Name:               strings.TrimSpace(in.Name),
		OwnerName:          strings.TrimSpace(in.OwnerName),
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		Address:            strings.TrimSpace(in.Address),
		Description:        strings.TrimSpace(in.Description),
		Website:            strings.TrimSpace(in.Website),
		BusinessHoursOpen:  strings.TrimSpace(in.BusinessHoursOpen),
		BusinessHoursClose: strings.TrimSpace(in.BusinessHoursClose),
		ServiceTaxRate:     in.ServiceTaxRate,
		InvoiceTemplate:    strings.TrimSpace(in.InvoiceTemplate),
		EmailNotifications: in.EmailNotifications,
		SMSNotifications:   in.SMSNotifications,
		Package:            entities.TenantPackageBasic,
		Status:             entities.TenantStatusTrial,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Tenant{}, err
	}
	u.log.WithField("tenant_id", created.ID).Info("[tenant][usecase] workshop registered")
	return created, nil
}

func (u *TenantUseCase) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, ErrInvalidTenantID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

// UpdateSettings rewrites the workshop profile. Changing ServiceTaxRate only
// affects orders saved after this call; existing orders keep their snapshot.
func (u *TenantUseCase) UpdateSettings(ctx context.Context, id string, in TenantSettingsInput) (entities.Tenant, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if err := validateTenantInput(in); err != nil {
		return entities.Tenant{}, err
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.OwnerName = strings.TrimSpace(in.OwnerName)
	existing.Email = strings.TrimSpace(in.Email)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.Address = strings.TrimSpace(in.Address)
	existing.Description = strings.TrimSpace(in.Description)
	existing.Website = strings.TrimSpace(in.Website)
	existing.BusinessHoursOpen = strings.TrimSpace(in.BusinessHoursOpen)
	existing.BusinessHoursClose = strings.TrimSpace(in.BusinessHoursClose)
	existing.ServiceTaxRate = in.ServiceTaxRate
	existing.InvoiceTemplate = strings.TrimSpace(in.InvoiceTemplate)
	existing.EmailNotifications = in.EmailNotifications
	existing.SMSNotifications = in.SMSNotifications
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *TenantUseCase) List(ctx context.Context) ([]entities.Tenant, error) {
	return u.repo.List(ctx)
}

func (u *TenantUseCase) UpdateStatus(ctx context.Context, id string, status entities.TenantStatus) (entities.Tenant, error) {
	switch status {
	case entities.TenantStatusActive, entities.TenantStatusTrial, entities.TenantStatusSuspended:
	default:
		return entities.Tenant{}, ErrInvalidTenantStatus
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *TenantUseCase) UpdatePackage(ctx context.Context, id string, pkg entities.TenantPackage) (entities.Tenant, error) {
	switch pkg {
	case entities.TenantPackageBasic, entities.TenantPackageStandard, entities.TenantPackagePremium:
	default:
		return entities.Tenant{}, ErrInvalidPackage
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	existing.Package = pkg
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func validateTenantInput(in TenantSettingsInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidTenantName
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrInvalidTenantEmail
	}
	if in.ServiceTaxRate < 0 {
		return ErrInvalidTaxRate
	}
	return nil
}
