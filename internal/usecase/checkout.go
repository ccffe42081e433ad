package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/discount"
	"ticket-checkout/internal/domain/pricing"
	reqdto "ticket-checkout/internal/handler/dto/request"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/pkg/clock"
	"ticket-checkout/internal/pkg/errs"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidItemType = errors.New("invalid item type")
)

type CatalogRepository interface {
	TierByID(ctx context.Context, id uuid.UUID) (*catalog.TicketTier, error)
	BundleByID(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error)
}

type DiscountRepositoryReader interface {
	FindByCode(ctx context.Context, code string) (*discount.Code, error)
}

// Preview is the server-computed price breakdown returned to the checkout
// UI. Discount is non-nil only when a code was supplied; a rejected code
// still yields a Preview with the undiscounted quote so the UI can render
// both the price and the rejection reason in one round-trip.
type Preview struct {
	Item     catalog.Item
	Quote    pricing.Quote
	Discount *discount.Result
}

type CheckoutUseCase interface {
	PreviewPrice(ctx context.Context, req reqdto.PreviewPriceRequest) (*Preview, error)
	ValidateDiscount(ctx context.Context, req reqdto.ValidateDiscountRequest) (discount.Result, error)
}

type checkoutUseCaseImpl struct {
	catalogRepo  CatalogRepository
	discountRepo DiscountRepositoryReader
	clock        clock.Clock
}

func NewCheckoutUseCase(
	catalogRepo CatalogRepository,
	discountRepo DiscountRepositoryReader,
	clock clock.Clock,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		catalogRepo:  catalogRepo,
		discountRepo: discountRepo,
		clock:        clock,
	}
}

// PreviewPrice recomputes the full breakdown from the catalog's current
// price. The client never supplies prices; a preview is advisory and the
// order path recomputes everything again at creation time.
func (c *checkoutUseCaseImpl) PreviewPrice(ctx context.Context, req reqdto.PreviewPriceRequest) (*Preview, error) {
	item, err := resolveItem(ctx, c.catalogRepo, req.ItemType, req.ItemID)
	if err != nil {
		return nil, err
	}

	subtotal := item.UnitPriceCents * int64(req.Quantity)

	var discountResult *discount.Result
	var discountCents int64
	if code := req.GetDiscountCode(); code != nil {
		result, err := c.evaluateDiscount(ctx, *code, item, subtotal)
		if err != nil {
			return nil, err
		}
		discountResult = &result
		discountCents = result.DiscountCents
	}

	quote, err := pricing.Calculate(item.UnitPriceCents, req.Quantity, discountCents, item.PaymentModel)
	if err != nil {
		return nil, errs.Wrap(err, "failed to calculate quote")
	}

	return &Preview{Item: item, Quote: quote, Discount: discountResult}, nil
}

// ValidateDiscount checks a code against the current cart without creating
// anything. The returned Result is the same shape the preview embeds.
func (c *checkoutUseCaseImpl) ValidateDiscount(ctx context.Context, req reqdto.ValidateDiscountRequest) (discount.Result, error) {
	item, err := resolveItem(ctx, c.catalogRepo, req.ItemType, req.ItemID)
	if err != nil {
		return discount.Result{}, err
	}

	subtotal := item.UnitPriceCents * int64(req.Quantity)
	return c.evaluateDiscount(ctx, req.Code, item, subtotal)
}

// evaluateDiscount maps an unknown code to an invalid_code result rather
// than an error: from the buyer's point of view a typo'd code and an
// expired one are the same kind of outcome.
func (c *checkoutUseCaseImpl) evaluateDiscount(ctx context.Context, code string, item catalog.Item, subtotalCents int64) (discount.Result, error) {
	codeEntity, err := c.discountRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return discount.Result{Reason: discount.ReasonInvalidCode}, nil
		}
		return discount.Result{}, errs.Wrap(err, "failed to find discount code")
	}

	return codeEntity.Validate([]uuid.UUID{item.ID}, subtotalCents, c.clock.Now()), nil
}

// resolveItem loads the live catalog snapshot behind a selection. Both the
// preview and the order path go through it so neither ever trusts a
// client-supplied price.
func resolveItem(ctx context.Context, repo CatalogRepository, itemType string, itemID uuid.UUID) (catalog.Item, error) {
	switch catalog.ItemType(itemType) {
	case catalog.ItemTier:
		tier, err := repo.TierByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.Item{}, ErrItemNotFound
			}
			return catalog.Item{}, errs.Wrap(err, "failed to find ticket tier")
		}
		return tier.AsItem(), nil

	case catalog.ItemBundle:
		bundle, err := repo.BundleByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.Item{}, ErrItemNotFound
			}
			return catalog.Item{}, errs.Wrap(err, "failed to find bundle")
		}
		return bundle.AsItem(), nil

	default:
		return catalog.Item{}, fmt.Errorf("%w: %q", ErrInvalidItemType, itemType)
	}
}
