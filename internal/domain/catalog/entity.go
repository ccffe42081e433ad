package catalog

import (
	"github.com/google/uuid"

	"ticket-checkout/internal/domain/pricing"
)

// ItemType discriminates the two sellable shapes: a single priced tier or a
// fixed-price bundle of tiers sold as one unit.
type ItemType string

const (
	ItemTier   ItemType = "TIER"
	ItemBundle ItemType = "BUNDLE"
)

func (t ItemType) IsValid() bool {
	return t == ItemTier || t == ItemBundle
}

// TicketTier is a read-only snapshot of a tier as served by the catalog
// collaborator. CurrentPriceCents already accounts for early-bird windows.
// Sold and Reserved are authoritative only inside the inventory ledger's
// transaction; a snapshot is advisory for preview purposes.
type TicketTier struct {
	ID                uuid.UUID
	Name              string
	PriceCents        int64
	CurrentPriceCents int64
	Capacity          int32
	Sold              int32
	Reserved          int32
	SeatingSectionID  *uuid.UUID
	PaymentModel      pricing.PaymentModel
}

// Remaining is the advisory count still purchasable at snapshot time.
func (t *TicketTier) Remaining() int32 {
	remaining := t.Capacity - t.Sold - t.Reserved
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RequiresSeats reports whether purchases of this tier must carry seat
// assignments.
func (t *TicketTier) RequiresSeats() bool {
	return t.SeatingSectionID != nil
}

// Bundle is a fixed-price package of tiers sold as one unit. Purchases draw
// down AvailableCount; the included tiers are a display concern and do not
// consume tier capacity here.
type Bundle struct {
	ID                uuid.UUID
	Name              string
	PriceCents        int64
	RegularPriceCents int64
	IncludedTierIDs   []uuid.UUID
	AvailableCount    int32
	Purchased         int32
	Reserved          int32
	PaymentModel      pricing.PaymentModel
}

func (b *Bundle) Remaining() int32 {
	remaining := b.AvailableCount - b.Purchased - b.Reserved
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Item is the uniform view the pricing and order paths consume, regardless
// of whether the buyer picked a tier or a bundle.
type Item struct {
	Type           ItemType
	ID             uuid.UUID
	Name           string
	UnitPriceCents int64
	PaymentModel   pricing.PaymentModel
	SeatingSection *uuid.UUID
}

func (t *TicketTier) AsItem() Item {
	return Item{
		Type:           ItemTier,
		ID:             t.ID,
		Name:           t.Name,
		UnitPriceCents: t.CurrentPriceCents,
		PaymentModel:   t.PaymentModel,
		SeatingSection: t.SeatingSectionID,
	}
}

func (b *Bundle) AsItem() Item {
	return Item{
		Type:           ItemBundle,
		ID:             b.ID,
		Name:           b.Name,
		UnitPriceCents: b.PriceCents,
		PaymentModel:   b.PaymentModel,
	}
}
