package billing

import (
	"testing"

	"bengkel_manager/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Run("workshop scenario", func(t *testing.T) {
		b, err := Calculate([]LineItem{{Quantity: 2, UnitPrice: 50000}}, 100000, 10)
		require.NoError(t, err)
		assert.Equal(t, 100000.0, b.SparePartsTotal)
		assert.Equal(t, 200000.0, b.BaseCost)
		assert.Equal(t, 20000.0, b.TaxAmount)
		assert.Equal(t, 220000.0, b.GrandTotal)
		assert.Equal(t, 10.0, b.TaxRatePercent)
	})

	t.Run("empty order", func(t *testing.T) {
		b, err := Calculate(nil, 0, 0)
		require.NoError(t, err)
		assert.Zero(t, b.SparePartsTotal)
		assert.Zero(t, b.GrandTotal)
	})

	t.Run("zero tax rate", func(t *testing.T) {
		b, err := Calculate([]LineItem{{Quantity: 3, UnitPrice: 15000}}, 25000, 0)
		require.NoError(t, err)
		assert.Equal(t, 70000.0, b.GrandTotal)
		assert.Zero(t, b.TaxAmount)
	})

	t.Run("tax rate above 100 is accepted", func(t *testing.T) {
		b, err := Calculate(nil, 100, 150)
		require.NoError(t, err)
		assert.Equal(t, 150.0, b.TaxAmount)
		assert.Equal(t, 250.0, b.GrandTotal)
	})

	t.Run("grand total identity", func(t *testing.T) {
		items := []LineItem{
			{Quantity: 1, UnitPrice: 12500},
			{Quantity: 4, UnitPrice: 7300},
			{Quantity: 2, UnitPrice: 99.99},
		}
		b, err := Calculate(items, 55000, 11)
		require.NoError(t, err)
		assert.Equal(t, b.BaseCost+b.TaxAmount, b.GrandTotal)
		assert.Equal(t, b.SparePartsTotal+b.ServiceFee, b.BaseCost)
	})

	t.Run("deterministic", func(t *testing.T) {
		items := []LineItem{{Quantity: 7, UnitPrice: 1234.56}}
		a, err := Calculate(items, 9999, 12.5)
		require.NoError(t, err)
		b, err := Calculate(items, 9999, 12.5)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("negative inputs rejected", func(t *testing.T) {
		_, err := Calculate([]LineItem{{Quantity: -1, UnitPrice: 10}}, 0, 0)
		assert.ErrorIs(t, err, ErrNegativeQuantity)

		_, err = Calculate([]LineItem{{Quantity: 1, UnitPrice: -10}}, 0, 0)
		assert.ErrorIs(t, err, ErrNegativeUnitPrice)

		_, err = Calculate(nil, -1, 0)
		assert.ErrorIs(t, err, ErrNegativeFee)

		_, err = Calculate(nil, 0, -1)
		assert.ErrorIs(t, err, ErrNegativeTaxRate)
	})
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name       string
		totalPaid  float64
		grandTotal float64
		want       entities.PaymentStatus
	}{
		{"nothing paid", 0, 220000, entities.PaymentStatusUnpaid},
		{"partial", 100000, 220000, entities.PaymentStatusPartial},
		{"exactly paid", 220000, 220000, entities.PaymentStatusPaid},
		{"overpaid", 300000, 220000, entities.PaymentStatusPaid},
		{"one unit short", 219999, 220000, entities.PaymentStatusPartial},
		{"zero total zero paid", 0, 0, entities.PaymentStatusUnpaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.totalPaid, tc.grandTotal))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 120000.0, Remaining(220000, 100000))
	assert.Zero(t, Remaining(220000, 220000))
	// Clamped for display even if the ledger somehow overshoots.
	assert.Zero(t, Remaining(220000, 250000))
}

func TestChangeDue(t *testing.T) {
	t.Run("cash with change", func(t *testing.T) {
		assert.Equal(t, 30000.0, ChangeDue(entities.PaymentMethodCash, 220000, 250000))
	})
	t.Run("cash exact", func(t *testing.T) {
		assert.Zero(t, ChangeDue(entities.PaymentMethodCash, 100000, 100000))
	})
	t.Run("non-cash never produces change", func(t *testing.T) {
		assert.Zero(t, ChangeDue(entities.PaymentMethodBankTransfer, 100000, 250000))
		assert.Zero(t, ChangeDue(entities.PaymentMethodEWallet, 100000, 0))
	})
}
