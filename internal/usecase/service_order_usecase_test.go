package usecase

import (
	"context"
	"errors"
	"testing"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func tenantFixture() entities.Tenant {
	return entities.Tenant{
		ID:             "tenant-1",
		Name:           "Bengkel Maju",
		OwnerName:      "Pak Agus",
		Email:          "agus@bengkelmaju.id",
		ServiceTaxRate: 10,
		Package:        entities.TenantPackageBasic,
		Status:         entities.TenantStatusActive,
	}
}

func sparepartFixture() entities.Sparepart {
	return entities.Sparepart{
		ID:           "sp-1",
		TenantID:     "tenant-1",
		Code:         "OLI-01",
		Name:         "Engine Oil 1L",
		Stock:        10,
		MinimumStock: 2,
		SellingPrice: 50000,
	}
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and persists the cost snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		spareparts.EXPECT().GetByID(gomock.Any(), "sp-1").Return(sparepartFixture(), nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.SparePartsTotal != 100000 {
					t.Fatalf("expected spare parts total 100000, got %v", o.SparePartsTotal)
				}
				if o.ServiceFee != 100000 {
					t.Fatalf("expected service fee 100000, got %v", o.ServiceFee)
				}
				if o.TaxRatePercent != 10 {
					t.Fatalf("expected tax rate 10, got %v", o.TaxRatePercent)
				}
				if o.TaxAmount != 20000 {
					t.Fatalf("expected tax 20000, got %v", o.TaxAmount)
				}
				if o.GrandTotal != 220000 {
					t.Fatalf("expected grand total 220000, got %v", o.GrandTotal)
				}
				if o.PaymentStatus != entities.PaymentStatusUnpaid {
					t.Fatalf("new order must start Unpaid, got %q", o.PaymentStatus)
				}
				return o, nil
			})
		orders.EXPECT().ReplaceLineItems(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
		spareparts.EXPECT().AdjustStock(gomock.Any(), "sp-1", -2).Return(sparepartFixture(), nil)

		detail, err := uc.Create(ctx, "tenant-1", ServiceOrderInput{
			CustomerName: "Budi",
			ServiceFee:   100000,
			Items:        []OrderItemInput{{SparepartID: "sp-1", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detail.Items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(detail.Items))
		}
		if detail.Items[0].UnitPrice != 50000 {
			t.Fatalf("unit price must copy the selling price, got %v", detail.Items[0].UnitPrice)
		}
		if detail.Items[0].LineTotal != 100000 {
			t.Fatalf("expected line total 100000, got %v", detail.Items[0].LineTotal)
		}
		if detail.Order.ServiceNumber == "" {
			t.Fatalf("expected a generated service number")
		}
	})

	t.Run("empty order carries only the fee and tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.GrandTotal != 55000 {
					t.Fatalf("expected grand total 55000, got %v", o.GrandTotal)
				}
				return o, nil
			})
		orders.EXPECT().ReplaceLineItems(gomock.Any(), gomock.Any(), gomock.Len(0)).Return(nil)

		_, err := uc.Create(ctx, "tenant-1", ServiceOrderInput{
			CustomerName: "Budi",
			ServiceFee:   50000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sparepart of another tenant is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		foreign := sparepartFixture()
		foreign.TenantID = "tenant-2"
		spareparts.EXPECT().GetByID(gomock.Any(), "sp-1").Return(foreign, nil)

		_, err := uc.Create(ctx, "tenant-1", ServiceOrderInput{
			CustomerName: "Budi",
			Items:        []OrderItemInput{{SparepartID: "sp-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrSparepartNotFound) {
			t.Fatalf("expected ErrSparepartNotFound, got %v", err)
		}
	})

	t.Run("quantity above stock is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		spareparts.EXPECT().GetByID(gomock.Any(), "sp-1").Return(sparepartFixture(), nil)

		_, err := uc.Create(ctx, "tenant-1", ServiceOrderInput{
			CustomerName: "Budi",
			Items:        []OrderItemInput{{SparepartID: "sp-1", Quantity: 11}},
		})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)

		_, err := uc.Create(ctx, "tenant-1", ServiceOrderInput{
			CustomerName: "Budi",
			Items:        []OrderItemInput{{SparepartID: "sp-1", Quantity: 0}},
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		tenants.EXPECT().GetByID(gomock.Any(), "tenant-404").Return(entities.Tenant{}, nil)

		_, err := uc.Create(ctx, "tenant-404", ServiceOrderInput{CustomerName: "Budi"})
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		_, err := uc.Create(ctx, "tenant-1", ServiceOrderInput{CustomerName: "   "})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("restores previous stock before re-reserving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		stored := entities.ServiceOrder{ID: "svc-1", TenantID: "tenant-1", CustomerName: "Budi", Status: entities.OrderStatusQueued, GrandTotal: 220000}
		orders.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(tenantFixture(), nil)
		orders.EXPECT().ListLineItems(gomock.Any(), "svc-1").Return([]entities.ServiceLineItem{
			{ID: "li-1", ServiceID: "svc-1", SparepartID: "sp-1", Quantity: 2},
		}, nil)
		spareparts.EXPECT().AdjustStock(gomock.Any(), "sp-1", 2).Return(sparepartFixture(), nil)
		spareparts.EXPECT().GetByID(gomock.Any(), "sp-1").Return(sparepartFixture(), nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.GrandTotal != 165000 {
					t.Fatalf("expected recomputed grand total 165000, got %v", o.GrandTotal)
				}
				return o, nil
			})
		orders.EXPECT().ReplaceLineItems(gomock.Any(), "svc-1", gomock.Len(1)).Return(nil)
		spareparts.EXPECT().AdjustStock(gomock.Any(), "sp-1", -1).Return(sparepartFixture(), nil)

		// 1x50000 parts + 100000 fee, 10% tax: 165000.
		_, err := uc.Update(ctx, "tenant-1", "svc-1", ServiceOrderInput{
			CustomerName: "Budi",
			ServiceFee:   100000,
			Items:        []OrderItemInput{{SparepartID: "sp-1", Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order of another tenant is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderRepository(ctrl)
		spareparts := mocks.NewMockISparepartRepository(ctrl)
		tenants := mocks.NewMockITenantRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

		orders.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.ServiceOrder{ID: "svc-1", TenantID: "tenant-2"}, nil)

		_, err := uc.Update(ctx, "tenant-1", "svc-1", ServiceOrderInput{CustomerName: "Budi"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_GetKeepsStoredTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mocks.NewMockIServiceOrderRepository(ctrl)
	spareparts := mocks.NewMockISparepartRepository(ctrl)
	tenants := mocks.NewMockITenantRepository(ctrl)
	uc := NewServiceOrderUseCase(orders, spareparts, tenants, nil)

	// The stored snapshot was taken when the tax rate was 10 and the oil cost
	// 50000. Reads must return it verbatim: no tenant lookup, no sparepart
	// lookup, no recalculation.
	stored := entities.ServiceOrder{
		ID:              "svc-1",
		TenantID:        "tenant-1",
		CustomerName:    "Budi",
		SparePartsTotal: 100000,
		ServiceFee:      100000,
		TaxRatePercent:  10,
		TaxAmount:       20000,
		GrandTotal:      220000,
		PaymentStatus:   entities.PaymentStatusUnpaid,
	}
	orders.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)
	orders.EXPECT().ListLineItems(gomock.Any(), "svc-1").Return([]entities.ServiceLineItem{
		{ID: "li-1", ServiceID: "svc-1", SparepartID: "sp-1", Quantity: 2, UnitPrice: 50000, LineTotal: 100000},
	}, nil)

	detail, err := uc.GetByID(context.Background(), "tenant-1", "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Order.GrandTotal != 220000 {
		t.Fatalf("stored grand total must survive reads, got %v", detail.Order.GrandTotal)
	}
	if detail.Order.TaxRatePercent != 10 {
		t.Fatalf("stored tax rate must survive reads, got %v", detail.Order.TaxRatePercent)
	}
	if detail.Items[0].UnitPrice != 50000 {
		t.Fatalf("stored unit price must survive reads, got %v", detail.Items[0].UnitPrice)
	}
}
