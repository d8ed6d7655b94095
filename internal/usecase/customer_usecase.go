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
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
)

// CustomerInput carries customer create/update submissions.
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Gender  string
	Notes   string
}

// VehicleInput carries vehicle create/update submissions.
type VehicleInput struct {
	LicensePlate  string
	Brand         string
	Model         string
	Year          int
	Color         string
	ChassisNumber string
	EngineNumber  string
	IsPrimary     bool
}

// ICustomerUseCase exposes customer records and their vehicles.

type ICustomerUseCase interface {
	Create(ctx context.Context, tenantID string, in CustomerInput) (entities.Customer, error)
	Update(ctx context.Context, tenantID, id string, in CustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, tenantID, id string) error
	GetByID(ctx context.Context, tenantID, id string) (entities.Customer, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Customer, error)

	AddVehicle(ctx context.Context, tenantID, customerID string, in VehicleInput) (entities.CustomerVehicle, error)
	UpdateVehicle(ctx context.Context, tenantID, customerID, vehicleID string, in VehicleInput) (entities.CustomerVehicle, error)
	DeleteVehicle(ctx context.Context, tenantID, customerID, vehicleID string) error
	ListVehicles(ctx context.Context, tenantID, customerID string) ([]entities.CustomerVehicle, error)
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(customers interfaces.ICustomerRepository, vehicles interfaces.IVehicleRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, vehicles: vehicles}
}

func (u *CustomerUseCase) Create(ctx context.Context, tenantID string, in CustomerInput) (entities.Customer, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Customer{}, ErrInvalidTenantID
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		CustomerCode: newDocumentNumber("CST", now),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		Gender:       strings.TrimSpace(in.Gender),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.customers.Create(ctx, c)
}

func (u *CustomerUseCase) Update(ctx context.Context, tenantID, id string, in CustomerInput) (entities.Customer, error) {
	existing, err := u.getOwned(ctx, tenantID, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.Email = strings.TrimSpace(in.Email)
	existing.Address = strings.TrimSpace(in.Address)
	existing.Gender = strings.TrimSpace(in.Gender)
	existing.Notes = strings.TrimSpace(in.Notes)
	existing.UpdatedAt = time.Now().UTC()
	return u.customers.Update(ctx, existing)
}

func (u *CustomerUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.getOwned(ctx, tenantID, id); err != nil {
		return err
	}
	return u.customers.Delete(ctx, id)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Customer, error) {
	return u.getOwned(ctx, tenantID, id)
}

func (u *CustomerUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.Customer, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.customers.ListByTenantID(ctx, tenantID)
}

func (u *CustomerUseCase) AddVehicle(ctx context.Context, tenantID, customerID string, in VehicleInput) (entities.CustomerVehicle, error) {
	if _, err := u.getOwned(ctx, tenantID, customerID); err != nil {
		return entities.CustomerVehicle{}, err
	}

	now := time.Now().UTC()
	v := entities.CustomerVehicle{
		ID:            uuid.NewString(),
		CustomerID:    strings.TrimSpace(customerID),
		LicensePlate:  strings.TrimSpace(in.LicensePlate),
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		Year:          in.Year,
		Color:         strings.TrimSpace(in.Color),
		ChassisNumber: strings.TrimSpace(in.ChassisNumber),
		EngineNumber:  strings.TrimSpace(in.EngineNumber),
		IsPrimary:     in.IsPrimary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.vehicles.Create(ctx, v)
}

func (u *CustomerUseCase) UpdateVehicle(ctx context.Context, tenantID, customerID, vehicleID string, in VehicleInput) (entities.CustomerVehicle, error) {
	existing, err := u.getOwnedVehicle(ctx, tenantID, customerID, vehicleID)
	if err != nil {
		return entities.CustomerVehicle{}, err
	}

	existing.LicensePlate = strings.TrimSpace(in.LicensePlate)
	existing.Brand = strings.TrimSpace(in.Brand)
	existing.Model = strings.TrimSpace(in.Model)
	existing.Year = in.Year
	existing.Color = strings.TrimSpace(in.Color)
	existing.ChassisNumber = strings.TrimSpace(in.ChassisNumber)
	existing.EngineNumber = strings.TrimSpace(in.EngineNumber)
	existing.IsPrimary = in.IsPrimary
	existing.UpdatedAt = time.Now().UTC()
	return u.vehicles.Update(ctx, existing)
}

func (u *CustomerUseCase) DeleteVehicle(ctx context.Context, tenantID, customerID, vehicleID string) error {
	if _, err := u.getOwnedVehicle(ctx, tenantID, customerID, vehicleID); err != nil {
		return err
	}
	return u.vehicles.Delete(ctx, vehicleID)
}

func (u *CustomerUseCase) ListVehicles(ctx context.Context, tenantID, customerID string) ([]entities.CustomerVehicle, error) {
	if _, err := u.getOwned(ctx, tenantID, customerID); err != nil {
		return nil, err
	}
	return u.vehicles.ListByCustomerID(ctx, customerID)
}

func (u *CustomerUseCase) getOwned(ctx context.Context, tenantID, id string) (entities.Customer, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Customer{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" || c.TenantID != tenantID {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) getOwnedVehicle(ctx context.Context, tenantID, customerID, vehicleID string) (entities.CustomerVehicle, error) {
	if _, err := u.getOwned(ctx, tenantID, customerID); err != nil {
		return entities.CustomerVehicle{}, err
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.CustomerVehicle{}, ErrInvalidVehicleID
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.CustomerVehicle{}, err
	}
	if v.ID == "" || v.CustomerID != strings.TrimSpace(customerID) {
		return entities.CustomerVehicle{}, ErrVehicleNotFound
	}
	return v, nil
}
