//go:build unit || integration

package builder

import (
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/order"
	"ticket-checkout/internal/domain/pricing"
)

// OrderBuilder assembles a pending order with sensible checkout defaults:
// two pass-through tier tickets at $25.00 with no discount.
type OrderBuilder struct {
	BuyerEmail     string
	BuyerName      string
	ItemType       catalog.ItemType
	ItemID         uuid.UUID
	Quantity       int32
	SeatIDs        []uuid.UUID
	UnitPriceCents int64
	DiscountCents  int64
	DiscountCodeID *uuid.UUID
	PaymentModel   pricing.PaymentModel
	ReservationID  uuid.UUID
	Now            time.Time
	TTL            time.Duration
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		BuyerEmail:     "buyer@example.com",
		BuyerName:      "Test Buyer",
		ItemType:       catalog.ItemTier,
		ItemID:         uuid.New(),
		Quantity:       2,
		UnitPriceCents: 2500,
		PaymentModel:   pricing.ModelPassThrough,
		ReservationID:  uuid.New(),
		Now:            time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		TTL:            20 * time.Minute,
	}
}

func (b *OrderBuilder) WithBuyerEmail(email string) *OrderBuilder {
	b.BuyerEmail = email
	return b
}

func (b *OrderBuilder) WithQuantity(quantity int32) *OrderBuilder {
	b.Quantity = quantity
	return b
}

func (b *OrderBuilder) WithUnitPrice(cents int64) *OrderBuilder {
	b.UnitPriceCents = cents
	return b
}

func (b *OrderBuilder) WithDiscount(cents int64) *OrderBuilder {
	b.DiscountCents = cents
	return b
}

func (b *OrderBuilder) WithPaymentModel(model pricing.PaymentModel) *OrderBuilder {
	b.PaymentModel = model
	return b
}

func (b *OrderBuilder) WithSeatIDs(seatIDs []uuid.UUID) *OrderBuilder {
	b.SeatIDs = seatIDs
	return b
}

func (b *OrderBuilder) WithTTL(ttl time.Duration) *OrderBuilder {
	b.TTL = ttl
	return b
}

func (b *OrderBuilder) BuildQuote() (pricing.Quote, error) {
	return pricing.Calculate(b.UnitPriceCents, b.Quantity, b.DiscountCents, b.PaymentModel)
}

func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	quote, err := b.BuildQuote()
	if err != nil {
		return nil, err
	}

	return order.NewPendingOrder(
		order.Buyer{Email: b.BuyerEmail, Name: b.BuyerName},
		order.Selection{Type: b.ItemType, ItemID: b.ItemID, Quantity: b.Quantity},
		b.SeatIDs,
		quote,
		b.DiscountCodeID,
		b.ReservationID,
		b.Now,
		b.TTL,
	)
}
