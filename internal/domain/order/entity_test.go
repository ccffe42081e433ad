//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-checkout/internal/domain/order"
	"ticket-checkout/tests/common/builder"
)

var (
	orderTime  = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	cashWindow = 30 * time.Minute
)

func TestNewPendingOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.PaymentMethod())
		assert.Equal(t, orderTime.Add(20*time.Minute), o.ExpiresAt())
		assert.Equal(t, int64(5550), o.Quote().TotalCents)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		quote, err := builder.NewOrderBuilder().BuildQuote()
		require.NoError(t, err)

		_, err = order.NewPendingOrder(
			order.Buyer{Email: "buyer@example.com"},
			order.Selection{Quantity: 0},
			nil, quote, nil, uuid.New(), orderTime, 20*time.Minute,
		)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("missing buyer email rejected", func(t *testing.T) {
		_, err := builder.NewOrderBuilder().WithBuyerEmail("").BuildDomain()
		assert.ErrorIs(t, err, order.ErrMissingBuyerEmail)
	})

	t.Run("inconsistent quote rejected", func(t *testing.T) {
		quote, _ := builder.NewOrderBuilder().BuildQuote()
		quote.TotalCents += 1

		_, err := order.NewPendingOrder(
			order.Buyer{Email: "buyer@example.com"},
			order.Selection{ItemID: uuid.New(), Quantity: 2},
			nil, quote, nil, uuid.New(), orderTime, 20*time.Minute,
		)
		assert.ErrorIs(t, err, order.ErrQuoteMismatch)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("stripe completion", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.Complete(order.MethodStripe, "pi_12345", orderTime.Add(time.Minute), cashWindow)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.MethodStripe, *o.PaymentMethod())
		assert.Equal(t, "pi_12345", *o.PaymentReference())
	})

	t.Run("second completion rejected", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.Complete(order.MethodStripe, "pi_12345", orderTime.Add(time.Minute), cashWindow))

		err = o.Complete(order.MethodPayPal, "PAYID-ABCDEFG", orderTime.Add(2*time.Minute), cashWindow)
		assert.ErrorIs(t, err, order.ErrNotPending)
		// first payment record survives
		assert.Equal(t, order.MethodStripe, *o.PaymentMethod())
		assert.Equal(t, "pi_12345", *o.PaymentReference())
	})

	t.Run("cash parks the order and extends its window", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		settleAt := orderTime.Add(time.Minute)
		require.NoError(t, o.Complete(order.MethodCash, "till-4", settleAt, cashWindow))

		assert.Equal(t, order.StatusCashPending, o.Status())
		assert.Equal(t, settleAt.Add(cashWindow), o.ExpiresAt())
		assert.False(t, o.Status().IsTerminal())
	})

	t.Run("free method requires zero total", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.Complete(order.MethodFree, order.FreePaymentReference, orderTime.Add(time.Minute), cashWindow)
		assert.ErrorIs(t, err, order.ErrNotFree)
	})

	t.Run("zero-total order completes with free sentinel", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithUnitPrice(0).BuildDomain()
		require.NoError(t, err)
		require.True(t, o.IsFree())

		err = o.Complete(order.MethodFree, order.FreePaymentReference, orderTime.Add(time.Minute), cashWindow)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.FreePaymentReference, *o.PaymentReference())
	})

	t.Run("empty reference rejected", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.Complete(order.MethodStripe, "", orderTime.Add(time.Minute), cashWindow)
		assert.ErrorIs(t, err, order.ErrEmptyPaymentRef)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.Complete("CHEQUE", "ref", orderTime.Add(time.Minute), cashWindow)
		assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
	})

	t.Run("completion after expiry rejected", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithTTL(10 * time.Minute).BuildDomain()
		require.NoError(t, err)

		err = o.Complete(order.MethodStripe, "pi_12345", orderTime.Add(11*time.Minute), cashWindow)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_ConfirmCash(t *testing.T) {
	t.Run("confirms a cash-pending order", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Complete(order.MethodCash, "till-4", orderTime.Add(time.Minute), cashWindow))

		err = o.ConfirmCash(orderTime.Add(10 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("rejects orders not awaiting cash", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.ConfirmCash(orderTime.Add(time.Minute))
		assert.ErrorIs(t, err, order.ErrNotCashPending)
	})

	t.Run("rejects already completed orders", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Complete(order.MethodStripe, "pi_12345", orderTime.Add(time.Minute), cashWindow))

		err = o.ConfirmCash(orderTime.Add(2 * time.Minute))
		assert.ErrorIs(t, err, order.ErrNotCashPending)
	})
}

func TestOrder_Expire(t *testing.T) {
	t.Run("pending order expires", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.Expire(orderTime.Add(21*time.Minute)))
		assert.Equal(t, order.StatusExpired, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("cash-pending order expires", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Complete(order.MethodCash, "till-4", orderTime.Add(time.Minute), cashWindow))

		require.NoError(t, o.Expire(orderTime.Add(time.Hour)))
		assert.Equal(t, order.StatusExpired, o.Status())
	})

	t.Run("terminal order does not expire", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Complete(order.MethodStripe, "pi_12345", orderTime.Add(time.Minute), cashWindow))

		err = o.Expire(orderTime.Add(time.Hour))
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.Cancel(orderTime.Add(time.Minute)))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("completed order does not cancel", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Complete(order.MethodStripe, "pi_12345", orderTime.Add(time.Minute), cashWindow))

		err = o.Cancel(orderTime.Add(2 * time.Minute))
		assert.ErrorIs(t, err, order.ErrNotPending)
	})
}
