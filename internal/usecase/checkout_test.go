//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/discount"
	"ticket-checkout/internal/domain/pricing"
	reqdto "ticket-checkout/internal/handler/dto/request"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/pkg/clock"
	"ticket-checkout/internal/usecase"
	"ticket-checkout/tests/common/builder"
	repositorymock "ticket-checkout/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCheckoutUseCase(t *testing.T) (usecase.CheckoutUseCase, *repositorymock.MockCatalogRepository, *repositorymock.MockDiscountRepositoryReader, *clock.MockClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalogRepo := repositorymock.NewMockCatalogRepository(ctrl)
	discountRepo := repositorymock.NewMockDiscountRepositoryReader(ctrl)
	mockClock := clock.NewMockClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	return usecase.NewCheckoutUseCase(catalogRepo, discountRepo, mockClock), catalogRepo, discountRepo, mockClock
}

func passthroughTier(id uuid.UUID, priceCents int64) *catalog.TicketTier {
	return &catalog.TicketTier{
		ID:                id,
		Name:              "General Admission",
		PriceCents:        priceCents,
		CurrentPriceCents: priceCents,
		Capacity:          100,
		PaymentModel:      pricing.ModelPassThrough,
	}
}

func TestPreviewPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("prices a tier from its current catalog price", func(t *testing.T) {
		uc, catalogRepo, _, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)

		preview, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType: "TIER",
			ItemID:   tierID,
			Quantity: 1,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5000), preview.Quote.SubtotalCents)
		assert.Equal(t, int64(364), preview.Quote.PlatformFeeCents)
		assert.Equal(t, int64(186), preview.Quote.ProcessingFeeCents)
		assert.Equal(t, int64(5550), preview.Quote.TotalCents)
		assert.Nil(t, preview.Discount)
	})

	t.Run("early-bird tier prices from CurrentPriceCents, not base price", func(t *testing.T) {
		uc, catalogRepo, _, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		tier := passthroughTier(tierID, 5000)
		tier.CurrentPriceCents = 4000
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).Return(tier, nil)

		preview, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType: "TIER",
			ItemID:   tierID,
			Quantity: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4000), preview.Quote.SubtotalCents)
	})

	t.Run("prices a bundle as one unit", func(t *testing.T) {
		uc, catalogRepo, _, _ := newCheckoutUseCase(t)
		bundleID := uuid.New()
		catalogRepo.EXPECT().BundleByID(gomock.Any(), bundleID).
			Return(&catalog.Bundle{
				ID:             bundleID,
				Name:           "Weekend Pass",
				PriceCents:     12000,
				AvailableCount: 50,
				PaymentModel:   pricing.ModelPrepay,
			}, nil)

		preview, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType: "BUNDLE",
			ItemID:   bundleID,
			Quantity: 1,
		})
		require.NoError(t, err)

		// prepay inventory carries no pass-through fees
		assert.Equal(t, int64(12000), preview.Quote.SubtotalCents)
		assert.Equal(t, int64(0), preview.Quote.PlatformFeeCents)
		assert.Equal(t, int64(0), preview.Quote.ProcessingFeeCents)
		assert.Equal(t, int64(12000), preview.Quote.TotalCents)
	})

	t.Run("applies a valid discount before fees", func(t *testing.T) {
		uc, catalogRepo, discountRepo, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)

		code, err := builder.NewDiscountCodeBuilder().
			WithType(discount.TypeFixedAmount, 1000).
			BuildDomain()
		require.NoError(t, err)
		discountRepo.EXPECT().FindByCode(gomock.Any(), "SPRING20").Return(code, nil)

		codeStr := "SPRING20"
		preview, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType:     "TIER",
			ItemID:       tierID,
			Quantity:     1,
			DiscountCode: &codeStr,
		})
		require.NoError(t, err)

		require.NotNil(t, preview.Discount)
		assert.True(t, preview.Discount.Valid)
		assert.Equal(t, int64(1000), preview.Quote.DiscountCents)
		assert.Equal(t, int64(327), preview.Quote.PlatformFeeCents)
		assert.Equal(t, int64(155), preview.Quote.ProcessingFeeCents)
		assert.Equal(t, int64(4482), preview.Quote.TotalCents)
	})

	t.Run("rejected code still returns the undiscounted quote", func(t *testing.T) {
		uc, catalogRepo, discountRepo, mockClock := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)

		code, err := builder.NewDiscountCodeBuilder().
			WithExpiresAt(mockClock.Now().Add(-time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		discountRepo.EXPECT().FindByCode(gomock.Any(), "SPRING20").Return(code, nil)

		codeStr := "SPRING20"
		preview, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType:     "TIER",
			ItemID:       tierID,
			Quantity:     1,
			DiscountCode: &codeStr,
		})
		require.NoError(t, err)

		require.NotNil(t, preview.Discount)
		assert.False(t, preview.Discount.Valid)
		assert.Equal(t, discount.ReasonExpired, preview.Discount.Reason)
		assert.Equal(t, int64(0), preview.Quote.DiscountCents)
		assert.Equal(t, int64(5550), preview.Quote.TotalCents)
	})

	t.Run("blank discount code is treated as absent", func(t *testing.T) {
		uc, catalogRepo, _, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)

		blank := "   "
		preview, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType:     "TIER",
			ItemID:       tierID,
			Quantity:     1,
			DiscountCode: &blank,
		})
		require.NoError(t, err)
		assert.Nil(t, preview.Discount)
	})

	t.Run("unknown tier maps to ErrItemNotFound", func(t *testing.T) {
		uc, catalogRepo, _, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(nil, infra.WrapRepoErr("tier not found", nil, infra.KindNotFound))

		_, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType: "TIER",
			ItemID:   tierID,
			Quantity: 1,
		})
		assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	})

	t.Run("unknown item type maps to ErrInvalidItemType", func(t *testing.T) {
		uc, _, _, _ := newCheckoutUseCase(t)

		_, err := uc.PreviewPrice(ctx, reqdto.PreviewPriceRequest{
			ItemType: "SEAT",
			ItemID:   uuid.New(),
			Quantity: 1,
		})
		assert.ErrorIs(t, err, usecase.ErrInvalidItemType)
	})
}

func TestValidateDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code returns the recomputed amount", func(t *testing.T) {
		uc, catalogRepo, discountRepo, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)

		code, err := builder.NewDiscountCodeBuilder().BuildDomain()
		require.NoError(t, err)
		discountRepo.EXPECT().FindByCode(gomock.Any(), "SPRING20").Return(code, nil)

		result, err := uc.ValidateDiscount(ctx, reqdto.ValidateDiscountRequest{
			Code:     "SPRING20",
			ItemType: "TIER",
			ItemID:   tierID,
			Quantity: 2,
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		// 20% of 2 x 5000
		assert.Equal(t, int64(2000), result.DiscountCents)
	})

	t.Run("unknown code is an invalid_code verdict, not an error", func(t *testing.T) {
		uc, catalogRepo, discountRepo, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)
		discountRepo.EXPECT().FindByCode(gomock.Any(), "TYPO").
			Return(nil, infra.WrapRepoErr("code not found", nil, infra.KindNotFound))

		result, err := uc.ValidateDiscount(ctx, reqdto.ValidateDiscountRequest{
			Code:     "TYPO",
			ItemType: "TIER",
			ItemID:   tierID,
			Quantity: 1,
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, discount.ReasonInvalidCode, result.Reason)
	})

	t.Run("tier-restricted code rejects an ineligible cart", func(t *testing.T) {
		uc, catalogRepo, discountRepo, _ := newCheckoutUseCase(t)
		tierID := uuid.New()
		catalogRepo.EXPECT().TierByID(gomock.Any(), tierID).
			Return(passthroughTier(tierID, 5000), nil)

		code, err := builder.NewDiscountCodeBuilder().
			WithEligibleTiers(uuid.New()).
			BuildDomain()
		require.NoError(t, err)
		discountRepo.EXPECT().FindByCode(gomock.Any(), "SPRING20").Return(code, nil)

		result, err := uc.ValidateDiscount(ctx, reqdto.ValidateDiscountRequest{
			Code:     "SPRING20",
			ItemType: "TIER",
			ItemID:   tierID,
			Quantity: 1,
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, discount.ReasonNotEligible, result.Reason)
	})
}
