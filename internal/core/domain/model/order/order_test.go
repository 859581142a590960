package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func mustLine(t *testing.T, quantity int, unitPriceCents int64) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity, mustMoney(t, unitPriceCents), "")
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("computes_subtotal", func(t *testing.T) {
		line := mustLine(t, 2, 1000)

		assert.Equal(t, int64(2000), line.Subtotal().Cents())
		require.NoError(t, line.Validate())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), 0, mustMoney(t, 1000), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewLine(kernel.NewUUID(), -1, mustMoney(t, 1000), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_item_id", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, 1, mustMoney(t, 1000), "")
		require.Error(t, err)
	})

	t.Run("zero_value_line_fails_validation", func(t *testing.T) {
		var line order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_exact_total", func(t *testing.T) {
		// Lines: qty 2 at 10.00 plus qty 1 at 25.00 must total 45.00.
		lines := []order.Line{mustLine(t, 2, 1000), mustLine(t, 1, 2500)}

		o, err := order.NewOrder(kernel.NewUUID(), "Ada", order.Details{}, lines, mustMoney(t, 4500))

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, int64(4500), o.TotalPrice().Cents())
		assert.Len(t, o.Lines(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("total_must_equal_sum_of_subtotals", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 2, 1000)}

		_, err := order.NewOrder(kernel.NewUUID(), "Ada", order.Details{}, lines, mustMoney(t, 1999))

		require.ErrorIs(t, err, order.ErrTotalPriceMismatch)
	})

	t.Run("requires_customer_name", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1000)}

		_, err := order.NewOrder(kernel.NewUUID(), "", order.Details{}, lines, mustMoney(t, 1000))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_at_least_one_line", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "Ada", order.Details{}, nil, mustMoney(t, 0))

		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("keeps_optional_details", func(t *testing.T) {
		details := order.Details{
			CustomerEmail: "ada@example.com",
			CustomerPhone: "555-0101",
			TableNumber:   "12",
			Notes:         "no onions",
		}
		lines := []order.Line{mustLine(t, 1, 1000)}

		o, err := order.NewOrder(kernel.NewUUID(), "Ada", details, lines, mustMoney(t, 1000))

		require.NoError(t, err)
		assert.Equal(t, details, o.Details())
	})

	t.Run("lines_are_copied_not_shared", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1000)}
		o, err := order.NewOrder(kernel.NewUUID(), "Ada", order.Details{}, lines, mustMoney(t, 1000))
		require.NoError(t, err)

		got := o.Lines()
		got[0] = order.Line{}

		assert.NoError(t, o.Lines()[0].Validate())
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		lines := []order.Line{mustLine(t, 1, 1000)}
		o, err := order.NewOrder(kernel.NewUUID(), "Ada", order.Details{}, lines, mustMoney(t, 1000))
		require.NoError(t, err)
		return o
	}

	t.Run("pending_process_complete", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Process())
		assert.Equal(t, order.Processing, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancel_drops_lines", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Empty(t, o.Lines())
	})

	t.Run("terminal_states_reject_transitions_and_preserve_status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Process())
		require.NoError(t, o.Complete())

		err := o.TransitionTo(order.Pending)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Completed, o.Status())

		err = o.Cancel()
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("transition_to_cancelled_goes_through_cancel", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.TransitionTo(order.Cancelled))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Empty(t, o.Lines())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_processing_order", func(t *testing.T) {
		id := kernel.NewUUID()
		lines := []order.Line{mustLine(t, 2, 1000)}

		o, err := order.RestoreOrder(id, "Ada", order.Details{}, order.Processing, lines, mustMoney(t, 2000))

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("restores_cancelled_order_without_lines", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "Ada", order.Details{}, order.Cancelled, nil, mustMoney(t, 2000))

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Empty(t, o.Lines())
	})

	t.Run("rejects_stored_total_that_disagrees_with_lines", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 2, 1000)}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "Ada", order.Details{}, order.Pending, lines, mustMoney(t, 9999))

		require.ErrorIs(t, err, order.ErrTotalPriceMismatch)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1000)}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "Ada", order.Details{}, order.Unknown, lines, mustMoney(t, 1000))

		require.Error(t, err)
	})
}
