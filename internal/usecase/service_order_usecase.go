package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bengkel_manager/internal/domain/billing"
	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidTenantID     = errors.New("invalid tenant id")
	ErrInvalidOrderID      = errors.New("invalid service order id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidQuantity     = errors.New("invalid line item quantity")
	ErrInvalidOrderStatus  = errors.New("invalid service order status")
	ErrOrderNotFound       = errors.New("service order not found")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrSparepartNotFound   = errors.New("sparepart not found")
	ErrInsufficientStock   = errors.New("insufficient sparepart stock")
	ErrNegativeAmount      = errors.New("negative amount")
)

// OrderItemInput is one requested sparepart line. The unit price is NOT an
// input: it is always copied from the sparepart's current selling price.
type OrderItemInput struct {
	SparepartID string
	Quantity    int
}

// ServiceOrderInput carries everything a create or edit submits.
type ServiceOrderInput struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	LicensePlate  string
	VehicleBrand  string
	VehicleModel  string
	VehicleYear   int
	VehicleKM     int
	Complaint     string
	Technician    string
	Status        entities.OrderStatus
	Progress      int
	EstimatedCost float64
	ServiceFee    float64
	Items         []OrderItemInput
}

// ServiceOrderDetail pairs an order with its line items, as rendered by the
// detail view and the printable invoice.
type ServiceOrderDetail struct {
	Order entities.ServiceOrder
	Items []entities.ServiceLineItem
}

// IServiceOrderUseCase exposes service order operations.
//
// Create and Update are the only places the cost snapshot is computed; Get,
// List and Invoice reads return the persisted values untouched.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, tenantID string, in ServiceOrderInput) (ServiceOrderDetail, error)
	Update(ctx context.Context, tenantID, orderID string, in ServiceOrderInput) (ServiceOrderDetail, error)
	GetByID(ctx context.Context, tenantID, orderID string) (ServiceOrderDetail, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orders     interfaces.IServiceOrderRepository
	spareparts interfaces.ISparepartRepository
	tenants    interfaces.ITenantRepository
	log        *logrus.Logger
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	spareparts interfaces.ISparepartRepository,
	tenants interfaces.ITenantRepository,
	log *logrus.Logger,
) *ServiceOrderUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ServiceOrderUseCase{orders: orders, spareparts: spareparts, tenants: tenants, log: log}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, tenantID string, in ServiceOrderInput) (ServiceOrderDetail, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return ServiceOrderDetail{}, ErrInvalidTenantID
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return ServiceOrderDetail{}, ErrInvalidCustomerName
	}
	if in.Status == "" {
		in.Status = entities.OrderStatusQueued
	}
	if !validOrderStatus(in.Status) {
		return ServiceOrderDetail{}, ErrInvalidOrderStatus
	}

	tenant, err := u.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	if tenant.ID == "" {
		return ServiceOrderDetail{}, ErrTenantNotFound
	}

	orderID := uuid.NewString()
	lineItems, billingItems, err := u.buildLineItems(ctx, tenantID, orderID, in.Items)
	if err != nil {
		return ServiceOrderDetail{}, err
	}

	// The tenant's CURRENT tax rate is copied into the order here and never
	// refreshed afterwards: historical invoices must not move when the rate
	// changes.
	breakdown, err := billing.Calculate(billingItems, in.ServiceFee, tenant.ServiceTaxRate)
	if err != nil {
		return ServiceOrderDetail{}, err
	}

	now := time.Now().UTC()
	order := entities.ServiceOrder{
		ID:              orderID,
		TenantID:        tenantID,
		ServiceNumber:   newDocumentNumber("SVC", now),
		CustomerID:      strings.TrimSpace(in.CustomerID),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		LicensePlate:    strings.TrimSpace(in.LicensePlate),
		VehicleBrand:    strings.TrimSpace(in.VehicleBrand),
		VehicleModel:    strings.TrimSpace(in.VehicleModel),
		VehicleYear:     in.VehicleYear,
		VehicleKM:       in.VehicleKM,
		Complaint:       strings.TrimSpace(in.Complaint),
		Technician:      strings.TrimSpace(in.Technician),
		Status:          in.Status,
		Progress:        in.Progress,
		EstimatedCost:   in.EstimatedCost,
		SparePartsTotal: breakdown.SparePartsTotal,
		ServiceFee:      breakdown.ServiceFee,
		TaxRatePercent:  breakdown.TaxRatePercent,
		TaxAmount:       breakdown.TaxAmount,
		GrandTotal:      breakdown.GrandTotal,
		PaymentStatus:   entities.PaymentStatusUnpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	if err := u.orders.ReplaceLineItems(ctx, orderID, lineItems); err != nil {
		return ServiceOrderDetail{}, err
	}
	if err := u.reserveStock(ctx, lineItems); err != nil {
		return ServiceOrderDetail{}, err
	}

	u.log.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"service_id":  created.ID,
		"grand_total": created.GrandTotal,
	}).Info("[order][usecase] service order created")
	return ServiceOrderDetail{Order: created, Items: lineItems}, nil
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, tenantID, orderID string, in ServiceOrderInput) (ServiceOrderDetail, error) {
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	if tenantID == "" {
		return ServiceOrderDetail{}, ErrInvalidTenantID
	}
	if orderID == "" {
		return ServiceOrderDetail{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return ServiceOrderDetail{}, ErrInvalidCustomerName
	}
	if in.Status != "" && !validOrderStatus(in.Status) {
		return ServiceOrderDetail{}, ErrInvalidOrderStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	if order.ID == "" || order.TenantID != tenantID {
		return ServiceOrderDetail{}, ErrOrderNotFound
	}

	tenant, err := u.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	if tenant.ID == "" {
		return ServiceOrderDetail{}, ErrTenantNotFound
	}

	// Hand the previously reserved quantities back before re-reserving, so an
	// edit that keeps a line does not double-count its stock.
	previous, err := u.orders.ListLineItems(ctx, orderID)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	for _, it := range previous {
		if _, err := u.spareparts.AdjustStock(ctx, it.SparepartID, it.Quantity); err != nil {
			return ServiceOrderDetail{}, err
		}
	}

	lineItems, billingItems, err := u.buildLineItems(ctx, tenantID, orderID, in.Items)
	if err != nil {
		return ServiceOrderDetail{}, err
	}

	breakdown, err := billing.Calculate(billingItems, in.ServiceFee, tenant.ServiceTaxRate)
	if err != nil {
		return ServiceOrderDetail{}, err
	}

	order.CustomerID = strings.TrimSpace(in.CustomerID)
	order.CustomerName = strings.TrimSpace(in.CustomerName)
	order.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	order.LicensePlate = strings.TrimSpace(in.LicensePlate)
	order.VehicleBrand = strings.TrimSpace(in.VehicleBrand)
	order.VehicleModel = strings.TrimSpace(in.VehicleModel)
	order.VehicleYear = in.VehicleYear
	order.VehicleKM = in.VehicleKM
	order.Complaint = strings.TrimSpace(in.Complaint)
	order.Technician = strings.TrimSpace(in.Technician)
	if in.Status != "" {
		order.Status = in.Status
	}
	order.Progress = in.Progress
	order.EstimatedCost = in.EstimatedCost
	order.SparePartsTotal = breakdown.SparePartsTotal
	order.ServiceFee = breakdown.ServiceFee
	order.TaxRatePercent = breakdown.TaxRatePercent
	order.TaxAmount = breakdown.TaxAmount
	order.GrandTotal = breakdown.GrandTotal
	order.UpdatedAt = time.Now().UTC()

	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	if err := u.orders.ReplaceLineItems(ctx, orderID, lineItems); err != nil {
		return ServiceOrderDetail{}, err
	}
	if err := u.reserveStock(ctx, lineItems); err != nil {
		return ServiceOrderDetail{}, err
	}

	u.log.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"service_id":  orderID,
		"grand_total": updated.GrandTotal,
	}).Info("[order][usecase] service order updated")
	return ServiceOrderDetail{Order: updated, Items: lineItems}, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, tenantID, orderID string) (ServiceOrderDetail, error) {
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	if tenantID == "" {
		return ServiceOrderDetail{}, ErrInvalidTenantID
	}
	if orderID == "" {
		return ServiceOrderDetail{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	if order.ID == "" || order.TenantID != tenantID {
		return ServiceOrderDetail{}, ErrOrderNotFound
	}

	items, err := u.orders.ListLineItems(ctx, orderID)
	if err != nil {
		return ServiceOrderDetail{}, err
	}
	return ServiceOrderDetail{Order: order, Items: items}, nil
}

func (u *ServiceOrderUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.orders.ListByTenantID(ctx, tenantID)
}

// buildLineItems resolves requested spareparts, checks tenant ownership and
// stock, and copies the current selling price into each line.
func (u *ServiceOrderUseCase) buildLineItems(ctx context.Context, tenantID, orderID string, items []OrderItemInput) ([]entities.ServiceLineItem, []billing.LineItem, error) {
	now := time.Now().UTC()
	lineItems := make([]entities.ServiceLineItem, 0, len(items))
	billingItems := make([]billing.LineItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, nil, ErrInvalidQuantity
		}
		sp, err := u.spareparts.GetByID(ctx, strings.TrimSpace(it.SparepartID))
		if err != nil {
			return nil, nil, err
		}
		if sp.ID == "" || sp.TenantID != tenantID {
			return nil, nil, ErrSparepartNotFound
		}
		if it.Quantity > sp.Stock {
			return nil, nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, sp.Name, sp.Stock)
		}
		lineItems = append(lineItems, entities.ServiceLineItem{
			ID:          uuid.NewString(),
			ServiceID:   orderID,
			SparepartID: sp.ID,
			ItemName:    sp.Name,
			Quantity:    it.Quantity,
			UnitPrice:   sp.SellingPrice,
			LineTotal:   float64(it.Quantity) * sp.SellingPrice,
			CreatedAt:   now,
		})
		billingItems = append(billingItems, billing.LineItem{Quantity: it.Quantity, UnitPrice: sp.SellingPrice})
	}
	return lineItems, billingItems, nil
}

func (u *ServiceOrderUseCase) reserveStock(ctx context.Context, items []entities.ServiceLineItem) error {
	for _, it := range items {
		if _, err := u.spareparts.AdjustStock(ctx, it.SparepartID, -it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func validOrderStatus(s entities.OrderStatus) bool {
	switch s {
	case entities.OrderStatusQueued, entities.OrderStatusInProgress, entities.OrderStatusCompleted:
		return true
	}
	return false
}

// newDocumentNumber builds human-facing numbers like SVC-20250114-3F2A9C.
func newDocumentNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}
