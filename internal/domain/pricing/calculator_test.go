//go:build unit

package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-checkout/internal/domain/pricing"
)

func TestCalculate(t *testing.T) {
	t.Run("pass-through charges both fees on top", func(t *testing.T) {
		quote, err := pricing.Calculate(2500, 2, 0, pricing.ModelPassThrough)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), quote.SubtotalCents)
		assert.Equal(t, int64(0), quote.DiscountCents)
		// 3.7% of 5000 rounded + 179 flat
		assert.Equal(t, int64(364), quote.PlatformFeeCents)
		// 2.9% of (5000 + 364) rounded + 30 flat
		assert.Equal(t, int64(186), quote.ProcessingFeeCents)
		assert.Equal(t, int64(5550), quote.TotalCents)
	})

	t.Run("discount applies before fees", func(t *testing.T) {
		quote, err := pricing.Calculate(2500, 2, 1000, pricing.ModelPassThrough)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), quote.SubtotalCents)
		assert.Equal(t, int64(1000), quote.DiscountCents)
		assert.Equal(t, int64(327), quote.PlatformFeeCents)
		assert.Equal(t, int64(155), quote.ProcessingFeeCents)
		assert.Equal(t, int64(4482), quote.TotalCents)
	})

	t.Run("prepay carries no buyer-side fees", func(t *testing.T) {
		quote, err := pricing.Calculate(2500, 2, 0, pricing.ModelPrepay)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), quote.SubtotalCents)
		assert.Equal(t, int64(0), quote.PlatformFeeCents)
		assert.Equal(t, int64(0), quote.ProcessingFeeCents)
		assert.Equal(t, int64(5000), quote.TotalCents)
	})

	t.Run("fully discounted order charges nothing", func(t *testing.T) {
		quote, err := pricing.Calculate(2500, 2, 5000, pricing.ModelPassThrough)
		require.NoError(t, err)

		assert.Equal(t, int64(0), quote.TotalCents)
		assert.True(t, quote.IsFree())
	})

	t.Run("free tier stays free under pass-through", func(t *testing.T) {
		quote, err := pricing.Calculate(0, 3, 0, pricing.ModelPassThrough)
		require.NoError(t, err)

		assert.Equal(t, int64(0), quote.TotalCents)
		assert.True(t, quote.IsFree())
	})

	t.Run("discount larger than subtotal is capped", func(t *testing.T) {
		quote, err := pricing.Calculate(1000, 1, 99999, pricing.ModelPassThrough)
		require.NoError(t, err)

		assert.Equal(t, int64(1000), quote.DiscountCents)
		assert.Equal(t, int64(0), quote.TotalCents)
	})

	t.Run("total reconciles with its parts", func(t *testing.T) {
		cases := []struct {
			unitPrice int64
			quantity  int32
			discount  int64
		}{
			{1, 1, 0},
			{333, 3, 50},
			{2500, 2, 1000},
			{9999, 7, 1234},
			{100000, 10, 0},
		}
		for _, tc := range cases {
			quote, err := pricing.Calculate(tc.unitPrice, tc.quantity, tc.discount, pricing.ModelPassThrough)
			require.NoError(t, err)
			assert.Equal(t,
				quote.SubtotalCents-quote.DiscountCents+quote.PlatformFeeCents+quote.ProcessingFeeCents,
				quote.TotalCents,
			)
		}
	})

	t.Run("same inputs produce identical quotes", func(t *testing.T) {
		first, err := pricing.Calculate(3333, 3, 500, pricing.ModelPassThrough)
		require.NoError(t, err)
		second, err := pricing.Calculate(3333, 3, 500, pricing.ModelPassThrough)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := pricing.Calculate(-1, 1, 0, pricing.ModelPassThrough)
		assert.ErrorIs(t, err, pricing.ErrInvalidUnitPrice)

		_, err = pricing.Calculate(1000, 0, 0, pricing.ModelPassThrough)
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)

		_, err = pricing.Calculate(1000, -2, 0, pricing.ModelPassThrough)
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)

		_, err = pricing.Calculate(1000, 1, -1, pricing.ModelPassThrough)
		assert.ErrorIs(t, err, pricing.ErrInvalidDiscount)
	})
}

func TestRoundPercentage(t *testing.T) {
	// 15% of 333 is 49.95, which rounds up
	assert.Equal(t, int64(50), pricing.RoundPercentage(333, 15))
	// 10% of 5 is 0.5, half rounds away from zero
	assert.Equal(t, int64(1), pricing.RoundPercentage(5, 10))
	assert.Equal(t, int64(0), pricing.RoundPercentage(0, 50))
	assert.Equal(t, int64(2000), pricing.RoundPercentage(10000, 20))
}
