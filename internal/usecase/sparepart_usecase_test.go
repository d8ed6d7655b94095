package usecase

import (
	"context"
	"errors"
	"testing"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSparepartUseCase_Restock(t *testing.T) {
	ctx := context.Background()

	t.Run("positive quantity adds stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISparepartRepository(ctrl)
		uc := NewSparepartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sp-1").Return(sparepartFixture(), nil)
		restocked := sparepartFixture()
		restocked.Stock = 15
		repo.EXPECT().AdjustStock(gomock.Any(), "sp-1", 5).Return(restocked, nil)

		got, err := uc.Restock(ctx, "tenant-1", "sp-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stock != 15 {
			t.Fatalf("expected stock 15, got %d", got.Stock)
		}
	})

	t.Run("zero and negative quantities are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISparepartRepository(ctrl)
		uc := NewSparepartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sp-1").Return(sparepartFixture(), nil).Times(2)

		if _, err := uc.Restock(ctx, "tenant-1", "sp-1", 0); !errors.Is(err, ErrInvalidRestockQty) {
			t.Fatalf("expected ErrInvalidRestockQty, got %v", err)
		}
		if _, err := uc.Restock(ctx, "tenant-1", "sp-1", -3); !errors.Is(err, ErrInvalidRestockQty) {
			t.Fatalf("expected ErrInvalidRestockQty, got %v", err)
		}
	})

	t.Run("sparepart of another tenant is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISparepartRepository(ctrl)
		uc := NewSparepartUseCase(repo, nil)

		foreign := sparepartFixture()
		foreign.TenantID = "tenant-2"
		repo.EXPECT().GetByID(gomock.Any(), "sp-1").Return(foreign, nil)

		if _, err := uc.Restock(ctx, "tenant-1", "sp-1", 5); !errors.Is(err, ErrSparepartNotFound) {
			t.Fatalf("expected ErrSparepartNotFound, got %v", err)
		}
	})
}

func TestSparepartUseCase_ListLowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockISparepartRepository(ctrl)
	uc := NewSparepartUseCase(repo, nil)

	low := sparepartFixture()
	low.ID = "sp-low"
	low.Stock = 2
	boundary := sparepartFixture()
	boundary.ID = "sp-boundary"
	boundary.Stock = boundary.MinimumStock
	healthy := sparepartFixture()
	healthy.ID = "sp-ok"

	repo.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.Sparepart{low, boundary, healthy}, nil)

	got, err := uc.ListLowStock(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Stock equal to the minimum counts as low.
	if len(got) != 2 {
		t.Fatalf("expected 2 low stock items, got %d", len(got))
	}
}

func TestSparepartUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISparepartRepository(ctrl)
		uc := NewSparepartUseCase(repo, nil)

		if _, err := uc.Create(ctx, "tenant-1", SparepartInput{Name: "Oil"}); !errors.Is(err, ErrInvalidSparepartCode) {
			t.Fatalf("expected ErrInvalidSparepartCode, got %v", err)
		}
		if _, err := uc.Create(ctx, "tenant-1", SparepartInput{Code: "OLI-01"}); !errors.Is(err, ErrInvalidSparepartName) {
			t.Fatalf("expected ErrInvalidSparepartName, got %v", err)
		}
		if _, err := uc.Create(ctx, "tenant-1", SparepartInput{Code: "OLI-01", Name: "Oil", Stock: -1}); !errors.Is(err, ErrInvalidStock) {
			t.Fatalf("expected ErrInvalidStock, got %v", err)
		}
		if _, err := uc.Create(ctx, "tenant-1", SparepartInput{Code: "OLI-01", Name: "Oil", SellingPrice: -1}); !errors.Is(err, ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("persists a trimmed catalog item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISparepartRepository(ctrl)
		uc := NewSparepartUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sparepart) (entities.Sparepart, error) {
				if s.Name != "Engine Oil 1L" {
					t.Fatalf("expected trimmed name, got %q", s.Name)
				}
				if s.ID == "" {
					t.Fatalf("expected a generated id")
				}
				return s, nil
			})

		_, err := uc.Create(ctx, "tenant-1", SparepartInput{
			Code:         "OLI-01",
			Name:         "  Engine Oil 1L  ",
			Stock:        10,
			MinimumStock: 2,
			SellingPrice: 50000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
