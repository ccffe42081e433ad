package request

import (
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	ItemType     string      `json:"item_type" binding:"required,oneof=TIER BUNDLE"`
	ItemID       uuid.UUID   `json:"item_id" binding:"required"`
	Quantity     int32       `json:"quantity" binding:"required,min=1"`
	SeatIDs      []uuid.UUID `json:"seat_ids,omitempty"`
	DiscountCode *string     `json:"discount_code,omitempty"`
	BuyerEmail   string      `json:"buyer_email" binding:"required,email"`
	BuyerName    string      `json:"buyer_name" binding:"required"`
	SessionID    string      `json:"session_id,omitempty"`
}

func (r CreateOrderRequest) GetDiscountCode() *string {
	return normalizeCode(r.DiscountCode)
}

type CompleteOrderRequest struct {
	PaymentMethod    string `json:"payment_method" binding:"required,oneof=STRIPE PAYPAL CASH FREE"`
	PaymentReference string `json:"payment_reference,omitempty"`
}

type JoinWaitlistRequest struct {
	TierID   *uuid.UUID `json:"tier_id,omitempty"`
	Email    string     `json:"email" binding:"required,email"`
	Name     string     `json:"name" binding:"required"`
	Quantity int32      `json:"quantity" binding:"required,min=1"`
}
