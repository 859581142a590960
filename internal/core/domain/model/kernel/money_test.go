package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("creates_positive_amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(1250)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.Cents())
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("zero_is_valid", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	a, err := kernel.NewMoneyFromCents(2000)
	require.NoError(t, err)
	b, err := kernel.NewMoneyFromCents(2500)
	require.NoError(t, err)

	assert.Equal(t, int64(4500), a.Add(b).Cents())
}

func TestMoney_MultiplyQuantity(t *testing.T) {
	t.Run("multiplies_exactly", func(t *testing.T) {
		unitPrice, err := kernel.NewMoneyFromCents(1000)
		require.NoError(t, err)

		subtotal, err := unitPrice.MultiplyQuantity(2)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), subtotal.Cents())
	})

	t.Run("no_rounding_drift_over_many_lines", func(t *testing.T) {
		// 0.10 added a thousand times must come out to exactly 100.00.
		dime, err := kernel.NewMoneyFromCents(10)
		require.NoError(t, err)

		var total kernel.Money
		for range 1000 {
			total = total.Add(dime)
		}

		assert.Equal(t, int64(10000), total.Cents())
		assert.Equal(t, "100.00", total.String())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		unitPrice, err := kernel.NewMoneyFromCents(1000)
		require.NoError(t, err)

		_, err = unitPrice.MultiplyQuantity(0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		unitPrice, err := kernel.NewMoneyFromCents(1000)
		require.NoError(t, err)

		_, err = unitPrice.MultiplyQuantity(-3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, err := kernel.NewMoneyFromCents(4500)
	require.NoError(t, err)
	b, err := kernel.NewMoneyFromCents(4500)
	require.NoError(t, err)
	c, err := kernel.NewMoneyFromCents(4501)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
