package response

import (
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/order"
)

type OrderResponse struct {
	ID               uuid.UUID     `json:"id"`
	ItemID           uuid.UUID     `json:"itemId"`
	ItemType         string        `json:"itemType"`
	Quantity         int32         `json:"quantity"`
	SeatIDs          []uuid.UUID   `json:"seatIds,omitempty"`
	BuyerEmail       string        `json:"buyerEmail"`
	BuyerName        string        `json:"buyerName"`
	Quote            QuoteResponse `json:"quote"`
	DiscountCodeID   *uuid.UUID    `json:"discountCodeId,omitempty"`
	Status           string        `json:"status"`
	PaymentMethod    *string       `json:"paymentMethod,omitempty"`
	PaymentReference *string       `json:"paymentReference,omitempty"`
	ExpiresAt        time.Time     `json:"expiresAt"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func FromOrder(o *order.Order) *OrderResponse {
	var method *string
	if o.PaymentMethod() != nil {
		m := string(*o.PaymentMethod())
		method = &m
	}

	return &OrderResponse{
		ID:         o.ID(),
		ItemID:     o.Selection().ItemID,
		ItemType:   string(o.Selection().Type),
		Quantity:   o.Selection().Quantity,
		SeatIDs:    o.SeatIDs(),
		BuyerEmail: o.Buyer().Email,
		BuyerName:  o.Buyer().Name,
		Quote: QuoteResponse{
			SubtotalCents:      o.Quote().SubtotalCents,
			DiscountCents:      o.Quote().DiscountCents,
			PlatformFeeCents:   o.Quote().PlatformFeeCents,
			ProcessingFeeCents: o.Quote().ProcessingFeeCents,
			TotalCents:         o.Quote().TotalCents,
		},
		DiscountCodeID:   o.DiscountCodeID(),
		Status:           o.Status().String(),
		PaymentMethod:    method,
		PaymentReference: o.PaymentReference(),
		ExpiresAt:        o.ExpiresAt(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

type WaitlistResponse struct {
	ID uuid.UUID `json:"id"`
}
