package usecase

import (
	"context"
	"errors"
	"testing"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("trims fields and assigns a customer code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		customers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.TenantID != "tenant-1" {
					t.Fatalf("expected tenant-1, got %q", c.TenantID)
				}
				if c.Name != "Budi Santoso" {
					t.Fatalf("expected trimmed name, got %q", c.Name)
				}
				if c.CustomerCode == "" {
					t.Fatalf("expected customer code")
				}
				return c, nil
			})

		got, err := uc.Create(context.Background(), "tenant-1", CustomerInput{
			Name:  "  Budi Santoso  ",
			Phone: "0812-1111-2222",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Phone != "0812-1111-2222" {
			t.Fatalf("unexpected phone: %q", got.Phone)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		_, err := uc.Create(context.Background(), "tenant-1", CustomerInput{Name: "   "})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("missing tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		_, err := uc.Create(context.Background(), "  ", CustomerInput{Name: "Budi"})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})
}

func TestCustomerUseCase_TenantIsolation(t *testing.T) {
	t.Run("get hides other tenants' customers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", TenantID: "tenant-other"}, nil)

		_, err := uc.GetByID(context.Background(), "tenant-1", "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("delete checks ownership first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		err := uc.Delete(context.Background(), "tenant-1", "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_Vehicles(t *testing.T) {
	t.Run("add vehicle to owned customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", TenantID: "tenant-1"}, nil)
		vehicles.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v entities.CustomerVehicle) (entities.CustomerVehicle, error) {
				if v.CustomerID != "cust-1" {
					t.Fatalf("expected cust-1, got %q", v.CustomerID)
				}
				if v.LicensePlate != "B 1234 XYZ" {
					t.Fatalf("expected trimmed plate, got %q", v.LicensePlate)
				}
				return v, nil
			})

		_, err := uc.AddVehicle(context.Background(), "tenant-1", "cust-1", VehicleInput{
			LicensePlate: " B 1234 XYZ ",
			Brand:        "Honda",
			Model:        "Vario 160",
			Year:         2022,
			IsPrimary:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update vehicle of another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", TenantID: "tenant-1"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.CustomerVehicle{ID: "veh-1", CustomerID: "cust-other"}, nil)

		_, err := uc.UpdateVehicle(context.Background(), "tenant-1", "cust-1", "veh-1", VehicleInput{})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("list vehicles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mocks.NewMockICustomerRepository(ctrl)
		vehicles := mocks.NewMockIVehicleRepository(ctrl)
		uc := NewCustomerUseCase(customers, vehicles)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", TenantID: "tenant-1"}, nil)
		vehicles.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.CustomerVehicle{
			{ID: "veh-1", CustomerID: "cust-1"},
			{ID: "veh-2", CustomerID: "cust-1"},
		}, nil)

		got, err := uc.ListVehicles(context.Background(), "tenant-1", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 vehicles, got %d", len(got))
		}
	})
}
