package usecase

import (
	"context"
	"testing"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mocks.NewMockIServiceOrderRepository(ctrl)
	payments := mocks.NewMockIPaymentRepository(ctrl)
	spareparts := mocks.NewMockISparepartRepository(ctrl)
	costs := mocks.NewMockICostRepository(ctrl)
	uc := NewReportUseCase(orders, payments, spareparts, costs)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)

	orders.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.ServiceOrder{
		{ID: "svc-1", CustomerID: "cust-1", Status: entities.OrderStatusInProgress},
		{ID: "svc-2", CustomerID: "cust-1", Status: entities.OrderStatusQueued},
		{ID: "svc-3", CustomerID: "cust-2", Status: entities.OrderStatusCompleted},
	}, nil)
	payments.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.Payment{
		{ID: "pay-1", Amount: 220000, PaymentDate: now},
		{ID: "pay-2", Amount: 90000, PaymentDate: yesterday},
	}, nil)
	spareparts.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.Sparepart{
		{ID: "sp-1", Stock: 1, MinimumStock: 2},
		{ID: "sp-2", Stock: 9, MinimumStock: 2},
	}, nil)

	stats, err := uc.Dashboard(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TodayRevenue != 220000 {
		t.Fatalf("expected today revenue 220000, got %v", stats.TodayRevenue)
	}
	if stats.ActiveServices != 1 || stats.QueuedServices != 1 {
		t.Fatalf("unexpected service counts: %+v", stats)
	}
	if stats.LowStockItems != 1 {
		t.Fatalf("expected 1 low stock item, got %d", stats.LowStockItems)
	}
	// Two orders share a customer.
	if stats.CustomersServed != 2 {
		t.Fatalf("expected 2 customers served, got %d", stats.CustomersServed)
	}
}

func TestReportUseCase_Financial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mocks.NewMockIServiceOrderRepository(ctrl)
	payments := mocks.NewMockIPaymentRepository(ctrl)
	spareparts := mocks.NewMockISparepartRepository(ctrl)
	costs := mocks.NewMockICostRepository(ctrl)
	uc := NewReportUseCase(orders, payments, spareparts, costs)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	inside := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	outside := time.Date(2025, 2, 2, 10, 0, 0, 0, time.UTC)

	payments.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.Payment{
		{ID: "pay-1", Amount: 220000, PaymentDate: inside},
		{ID: "pay-2", Amount: 500000, PaymentDate: outside},
	}, nil)
	costs.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.Cost{
		{ID: "cost-1", Amount: 50000, CostDate: inside},
		{ID: "cost-2", Amount: 999999, CostDate: outside},
	}, nil)
	orders.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.ServiceOrder{
		{ID: "svc-1", CreatedAt: inside},
		{ID: "svc-2", CreatedAt: outside},
	}, nil)
	orders.EXPECT().ListLineItems(gomock.Any(), "svc-1").Return([]entities.ServiceLineItem{
		{ID: "li-1", SparepartID: "sp-1", Quantity: 2},
	}, nil)
	spareparts.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.Sparepart{ID: "sp-1", TenantID: "tenant-1", PurchasePrice: 30000}, nil)

	summary, err := uc.Financial(context.Background(), "tenant-1", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalIncome != 220000 {
		t.Fatalf("expected income 220000, got %v", summary.TotalIncome)
	}
	// 50000 operational + 2x30000 parts at purchase price.
	if summary.TotalExpenses != 110000 {
		t.Fatalf("expected expenses 110000, got %v", summary.TotalExpenses)
	}
	if summary.NetProfit != 110000 {
		t.Fatalf("expected net profit 110000, got %v", summary.NetProfit)
	}
	if summary.PaymentCount != 1 || summary.ServiceCount != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}

func TestReportUseCase_FinancialSwapsReversedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mocks.NewMockIServiceOrderRepository(ctrl)
	payments := mocks.NewMockIPaymentRepository(ctrl)
	spareparts := mocks.NewMockISparepartRepository(ctrl)
	costs := mocks.NewMockICostRepository(ctrl)
	uc := NewReportUseCase(orders, payments, spareparts, costs)

	from := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	payments.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return(nil, nil)
	costs.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return(nil, nil)
	orders.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return(nil, nil)

	summary, err := uc.Financial(context.Background(), "tenant-1", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.From.After(summary.To) {
		t.Fatalf("expected normalized range, got %v..%v", summary.From, summary.To)
	}
}
