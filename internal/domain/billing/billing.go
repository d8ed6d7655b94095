// Package billing holds the cost aggregation and payment settlement rules
// shared by order editing, invoice rendering and payment processing. All
// three call sites must agree on the same breakdown, so the arithmetic lives
// here and nowhere else.
package billing

import (
	"errors"

	"bengkel_manager/internal/domain/entities"
)

var (
	ErrNegativeQuantity  = errors.New("negative line item quantity")
	ErrNegativeUnitPrice = errors.New("negative line item unit price")
	ErrNegativeFee       = errors.New("negative service fee")
	ErrNegativeTaxRate   = errors.New("negative tax rate")
)

// LineItem is the minimal input the aggregator needs per consumed sparepart.
type LineItem struct {
	Quantity  int
	UnitPrice float64
}

// Breakdown is the persisted cost snapshot of a service order.
//
// Invariant: GrandTotal == BaseCost + TaxAmount == SparePartsTotal +
// ServiceFee + TaxAmount, exactly, with no rounding beyond float64.
type Breakdown struct {
	SparePartsTotal float64
	ServiceFee      float64
	BaseCost        float64
	TaxRatePercent  float64
	TaxAmount       float64
	GrandTotal      float64
}

// Calculate produces the cost breakdown for a service order.
//
// The two-step base-then-tax form is deliberate: BaseCost is independently
// persisted and displayed, so collapsing the computation into a single
// multiplication would let the stored intermediate drift from the total.
//
// A tax rate above 100 is accepted; the original system never capped it and
// existing tenants may rely on that.
func Calculate(items []LineItem, serviceFee, taxRatePercent float64) (Breakdown, error) {
	if serviceFee < 0 {
		return Breakdown{}, ErrNegativeFee
	}
	if taxRatePercent < 0 {
		return Breakdown{}, ErrNegativeTaxRate
	}

	sparePartsTotal := 0.0
	for _, it := range items {
		if it.Quantity < 0 {
			return Breakdown{}, ErrNegativeQuantity
		}
		if it.UnitPrice < 0 {
			return Breakdown{}, ErrNegativeUnitPrice
		}
		sparePartsTotal += float64(it.Quantity) * it.UnitPrice
	}

	baseCost := sparePartsTotal + serviceFee
	taxAmount := baseCost * taxRatePercent / 100
	return Breakdown{
		SparePartsTotal: sparePartsTotal,
		ServiceFee:      serviceFee,
		BaseCost:        baseCost,
		TaxRatePercent:  taxRatePercent,
		TaxAmount:       taxAmount,
		GrandTotal:      baseCost + taxAmount,
	}, nil
}

// DeriveStatus maps cumulative payments to the tri-state payment status.
//
//	totalPaid == 0           => Unpaid
//	0 < totalPaid < total    => Partial
//	totalPaid >= total       => Paid
func DeriveStatus(totalPaid, grandTotal float64) entities.PaymentStatus {
	switch {
	case totalPaid <= 0:
		return entities.PaymentStatusUnpaid
	case totalPaid >= grandTotal:
		return entities.PaymentStatusPaid
	default:
		return entities.PaymentStatusPartial
	}
}

// Remaining is the outstanding balance, clamped to zero for display.
func Remaining(grandTotal, totalPaid float64) float64 {
	if r := grandTotal - totalPaid; r > 0 {
		return r
	}
	return 0
}

// ChangeDue is the cash to hand back for a single payment. It is a
// receipt-time display value only and is never persisted. Non-cash methods
// never produce change.
func ChangeDue(method entities.PaymentMethod, amount, cashReceived float64) float64 {
	if method != entities.PaymentMethodCash {
		return 0
	}
	if c := cashReceived - amount; c > 0 {
		return c
	}
	return 0
}
