package usecase

import (
	"context"
	"strings"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"
)

// DashboardStats backs the landing dashboard cards.
type DashboardStats struct {
	TodayRevenue    float64 `json:"today_revenue"`
	ActiveServices  int     `json:"active_services"`
	QueuedServices  int     `json:"queued_services"`
	LowStockItems   int     `json:"low_stock_items"`
	CustomersServed int     `json:"customers_served"`
}

// FinancialSummary is the financial report over a date range. Expenses are
// operational costs plus the purchase cost of consumed spareparts; income is
// the payment ledger, so unpaid work never counts as revenue.
type FinancialSummary struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	TotalIncome   float64   `json:"total_income"`
	TotalExpenses float64   `json:"total_expenses"`
	NetProfit     float64   `json:"net_profit"`
	PaymentCount  int       `json:"payment_count"`
	ServiceCount  int       `json:"service_count"`
}

// IReportUseCase exposes read-only aggregations for the dashboard and the
// financial report. Everything is computed from stored records; order cost
// snapshots are never recomputed here.

type IReportUseCase interface {
	Dashboard(ctx context.Context, tenantID string) (DashboardStats, error)
	Financial(ctx context.Context, tenantID string, from, to time.Time) (FinancialSummary, error)
}

type ReportUseCase struct {
	orders     interfaces.IServiceOrderRepository
	payments   interfaces.IPaymentRepository
	spareparts interfaces.ISparepartRepository
	costs      interfaces.ICostRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orders interfaces.IServiceOrderRepository,
	payments interfaces.IPaymentRepository,
	spareparts interfaces.ISparepartRepository,
	costs interfaces.ICostRepository,
) *ReportUseCase {
	return &ReportUseCase{orders: orders, payments: payments, spareparts: spareparts, costs: costs}
}

func (u *ReportUseCase) Dashboard(ctx context.Context, tenantID string) (DashboardStats, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return DashboardStats{}, ErrInvalidTenantID
	}

	orders, err := u.orders.ListByTenantID(ctx, tenantID)
	if err != nil {
		return DashboardStats{}, err
	}
	payments, err := u.payments.ListByTenantID(ctx, tenantID)
	if err != nil {
		return DashboardStats{}, err
	}
	spareparts, err := u.spareparts.ListByTenantID(ctx, tenantID)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{}
	now := time.Now().UTC()
	for _, p := range payments {
		if sameDay(p.PaymentDate, now) {
			stats.TodayRevenue += p.Amount
		}
	}
	served := map[string]struct{}{}
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusInProgress:
			stats.ActiveServices++
		case entities.OrderStatusQueued:
			stats.QueuedServices++
		}
		if o.CustomerID != "" {
			served[o.CustomerID] = struct{}{}
		}
	}
	stats.CustomersServed = len(served)
	for _, s := range spareparts {
		if s.LowOnStock() {
			stats.LowStockItems++
		}
	}
	return stats, nil
}

func (u *ReportUseCase) Financial(ctx context.Context, tenantID string, from, to time.Time) (FinancialSummary, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return FinancialSummary{}, ErrInvalidTenantID
	}
	if to.Before(from) {
		from, to = to, from
	}

	summary := FinancialSummary{From: from, To: to}

	payments, err := u.payments.ListByTenantID(ctx, tenantID)
	if err != nil {
		return FinancialSummary{}, err
	}
	for _, p := range payments {
		if inRange(p.PaymentDate, from, to) {
			summary.TotalIncome += p.Amount
			summary.PaymentCount++
		}
	}

	costs, err := u.costs.ListByTenantID(ctx, tenantID)
	if err != nil {
		return FinancialSummary{}, err
	}
	for _, c := range costs {
		if inRange(c.CostDate, from, to) {
			summary.TotalExpenses += c.Amount
		}
	}

	// Parts expense uses the purchase price of consumed spareparts, looked up
	// once per distinct part.
	orders, err := u.orders.ListByTenantID(ctx, tenantID)
	if err != nil {
		return FinancialSummary{}, err
	}
	purchasePrices := map[string]float64{}
	for _, o := range orders {
		if !inRange(o.CreatedAt, from, to) {
			continue
		}
		summary.ServiceCount++
		items, err := u.orders.ListLineItems(ctx, o.ID)
		if err != nil {
			return FinancialSummary{}, err
		}
		for _, it := range items {
			price, ok := purchasePrices[it.SparepartID]
			if !ok {
				sp, err := u.spareparts.GetByID(ctx, it.SparepartID)
				if err != nil {
					return FinancialSummary{}, err
				}
				price = sp.PurchasePrice
				purchasePrices[it.SparepartID] = price
			}
			summary.TotalExpenses += price * float64(it.Quantity)
		}
	}

	summary.NetProfit = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}

func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.UTC().Date()
	y2, m2, d2 := ref.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
