package usecase

import (
	"context"
	"encoding/json"
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
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrAmountExceedsBalance = errors.New("payment exceeds outstanding balance")
	ErrInsufficientCash     = errors.New("insufficient cash received")
	ErrOrderAlreadyPaid     = errors.New("service order already fully paid")
)

// RecordPaymentInput is one proposed settlement against a service order.
// CashReceived is only meaningful for the Cash method.
type RecordPaymentInput struct {
	Amount       float64
	Method       entities.PaymentMethod
	CashReceived float64
	Notes        string
}

// SettlementResult is what the payment form renders on its receipt: the
// appended payment, the derived status, and a display-only change amount.
type SettlementResult struct {
	Payment   entities.Payment
	Status    entities.PaymentStatus
	TotalPaid float64
	Remaining float64
	ChangeDue float64
}

// IPaymentUseCase encapsulates payment settlement against service orders.
//
// Every precondition is checked before any write: a rejected settlement
// leaves both the payment ledger and the order untouched.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, tenantID, serviceID string, in RecordPaymentInput) (SettlementResult, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, tenantID, serviceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	orders   interfaces.IServiceOrderRepository
	gateway  interfaces.IPaymentGateway
	log      *logrus.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	orders interfaces.IServiceOrderRepository,
	gateway interfaces.IPaymentGateway,
	log *logrus.Logger,
) *PaymentUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PaymentUseCase{payments: payments, orders: orders, gateway: gateway, log: log}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, tenantID, serviceID string, in RecordPaymentInput) (SettlementResult, error) {
	tenantID = strings.TrimSpace(tenantID)
	serviceID = strings.TrimSpace(serviceID)
	if tenantID == "" {
		return SettlementResult{}, ErrInvalidTenantID
	}
	if serviceID == "" {
		return SettlementResult{}, ErrInvalidOrderID
	}
	if in.Amount <= 0 {
		return SettlementResult{}, ErrInvalidAmount
	}
	if !entities.ValidPaymentMethod(in.Method) {
		return SettlementResult{}, ErrInvalidPaymentMethod
	}
	if in.Method == entities.PaymentMethodCash && in.CashReceived < in.Amount {
		return SettlementResult{}, ErrInsufficientCash
	}

	order, err := u.orders.GetByID(ctx, serviceID)
	if err != nil {
		return SettlementResult{}, err
	}
	if order.ID == "" || order.TenantID != tenantID {
		return SettlementResult{}, ErrOrderNotFound
	}

	existing, err := u.payments.ListByServiceID(ctx, serviceID)
	if err != nil {
		return SettlementResult{}, err
	}
	paidSoFar := sumPayments(existing)

	// The data model cannot prevent an extra insert; the resolver must.
	if paidSoFar >= order.GrandTotal {
		return SettlementResult{}, ErrOrderAlreadyPaid
	}
	if in.Amount > order.GrandTotal-paidSoFar {
		return SettlementResult{}, ErrAmountExceedsBalance
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		ServiceID:     serviceID,
		PaymentNumber: newDocumentNumber("PAY", now),
		Amount:        in.Amount,
		Method:        in.Method,
		Status:        entities.PaymentStatusCompleted,
		Notes:         strings.TrimSpace(in.Notes),
		PaymentDate:   now,
		CreatedAt:     now,
	}

	// Non-cash methods are charged through the provider first; a gateway
	// failure aborts the settlement before anything is written.
	if in.Method != entities.PaymentMethodCash && u.gateway != nil {
		providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, chargePayload(order, in))
		if err != nil {
			u.log.WithFields(logrus.Fields{
				"tenant_id":  tenantID,
				"service_id": serviceID,
			}).WithError(err).Error("[payment][usecase] gateway charge failed")
			return SettlementResult{}, err
		}
		payment.ProviderPaymentID = providerID
		payment.ProviderResponse = providerResp
		u.log.WithFields(logrus.Fields{
			"service_id":          serviceID,
			"provider_payment_id": providerID,
			"provider_status":     providerStatus,
		}).Info("[payment][usecase] gateway charge succeeded")
	}

	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		return SettlementResult{}, err
	}

	totalPaid := paidSoFar + in.Amount
	status := billing.DeriveStatus(totalPaid, order.GrandTotal)
	var paymentDate *time.Time
	if status == entities.PaymentStatusPaid {
		paymentDate = &now
	}
	if _, err := u.orders.UpdatePaymentStatus(ctx, serviceID, status, paymentDate); err != nil {
		return SettlementResult{}, err
	}

	u.log.WithFields(logrus.Fields{
		"tenant_id":  tenantID,
		"service_id": serviceID,
		"payment_id": created.ID,
		"status":     status,
	}).Info("[payment][usecase] payment recorded")

	return SettlementResult{
		Payment:   created,
		Status:    status,
		TotalPaid: totalPaid,
		Remaining: billing.Remaining(order.GrandTotal, totalPaid),
		ChangeDue: billing.ChangeDue(in.Method, in.Amount, in.CashReceived),
	}, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Payment, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.TenantID != tenantID {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByServiceID(ctx context.Context, tenantID, serviceID string) ([]entities.Payment, error) {
	tenantID = strings.TrimSpace(tenantID)
	serviceID = strings.TrimSpace(serviceID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if serviceID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" || order.TenantID != tenantID {
		return nil, ErrOrderNotFound
	}
	return u.payments.ListByServiceID(ctx, serviceID)
}

func sumPayments(payments []entities.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func chargePayload(order entities.ServiceOrder, in RecordPaymentInput) json.RawMessage {
	payload := map[string]any{
		"transaction_amount": in.Amount,
		"description":        fmt.Sprintf("Service %s", order.ServiceNumber),
		"external_reference": order.ID,
		"payment_method":     string(in.Method),
	}
	b, _ := json.Marshal(payload)
	return b
}
