package repository

import (
	"context"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/pricing"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
)

// CatalogRepository reads tier and bundle snapshots. Definitions are
// authored by the catalog collaborator; this service never writes them
// outside the inventory ledger's counter updates.
type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

func (r *CatalogRepository) TierByID(ctx context.Context, id uuid.UUID) (*catalog.TicketTier, error) {
	var (
		tier         catalog.TicketTier
		paymentModel string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price_cents, current_price_cents, capacity, sold, reserved, seating_section_id, payment_model
		FROM ticket_tiers
		WHERE id = $1`,
		id,
	).Scan(
		&tier.ID, &tier.Name, &tier.PriceCents, &tier.CurrentPriceCents,
		&tier.Capacity, &tier.Sold, &tier.Reserved, &tier.SeatingSectionID, &paymentModel,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("ticket tier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket tier", err)
	}

	tier.PaymentModel = pricing.PaymentModel(paymentModel)
	return &tier, nil
}

func (r *CatalogRepository) BundleByID(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error) {
	var (
		bundle       catalog.Bundle
		paymentModel string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price_cents, regular_price_cents, included_tier_ids, available_count, purchased, reserved, payment_model
		FROM bundles
		WHERE id = $1`,
		id,
	).Scan(
		&bundle.ID, &bundle.Name, &bundle.PriceCents, &bundle.RegularPriceCents,
		&bundle.IncludedTierIDs, &bundle.AvailableCount, &bundle.Purchased, &bundle.Reserved, &paymentModel,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("bundle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle", err)
	}

	bundle.PaymentModel = pricing.PaymentModel(paymentModel)
	return &bundle, nil
}
