package usecase

import (
	"context"
	"errors"
	"testing"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTenantUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("new workshop starts on trial basic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.Status != entities.TenantStatusTrial {
					t.Fatalf("expected Trial status, got %q", tn.Status)
				}
				if tn.Package != entities.TenantPackageBasic {
					t.Fatalf("expected Basic package, got %q", tn.Package)
				}
				return tn, nil
			})

		_, err := uc.Register(ctx, TenantSettingsInput{
			Name:           "Bengkel Maju",
			Email:          "agus@bengkelmaju.id",
			ServiceTaxRate: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative tax rate is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		_, err := uc.Register(ctx, TenantSettingsInput{
			Name:           "Bengkel Maju",
			Email:          "agus@bengkelmaju.id",
			ServiceTaxRate: -1,
		})
		if !errors.Is(err, ErrInvalidTaxRate) {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})
}

func TestTenantUseCase_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("tax rate above 100 is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.ServiceTaxRate != 150 {
					t.Fatalf("expected rate 150, got %v", tn.ServiceTaxRate)
				}
				return tn, nil
			})

		_, err := uc.UpdateSettings(ctx, "tenant-1", TenantSettingsInput{
			Name:           "Bengkel Maju",
			Email:          "agus@bengkelmaju.id",
			ServiceTaxRate: 150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-404").Return(entities.Tenant{}, nil)

		_, err := uc.UpdateSettings(ctx, "tenant-404", TenantSettingsInput{Name: "X", Email: "x@y.id"})
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})
}

func TestTenantUseCase_AdminPanel(t *testing.T) {
	ctx := context.Background()

	t.Run("suspend and reactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.Status != entities.TenantStatusSuspended {
					t.Fatalf("expected Suspended, got %q", tn.Status)
				}
				return tn, nil
			})

		if _, err := uc.UpdateStatus(ctx, "tenant-1", entities.TenantStatusSuspended); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bogus status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		if _, err := uc.UpdateStatus(ctx, "tenant-1", "Frozen"); !errors.Is(err, ErrInvalidTenantStatus) {
			t.Fatalf("expected ErrInvalidTenantStatus, got %v", err)
		}
	})

	t.Run("package upgrade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) { return tn, nil })

		got, err := uc.UpdatePackage(ctx, "tenant-1", entities.TenantPackagePremium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Package != entities.TenantPackagePremium {
			t.Fatalf("expected Premium, got %q", got.Package)
		}
	})

	t.Run("bogus package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		if _, err := uc.UpdatePackage(ctx, "tenant-1", "Platinum"); !errors.Is(err, ErrInvalidPackage) {
			t.Fatalf("expected ErrInvalidPackage, got %v", err)
		}
	})
}
