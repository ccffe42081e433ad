package queue

import (
	"time"

	"github.com/google/uuid"
)

// OrderCompletedEvent is consumed by ticket issuance and the confirmation
// email sender.
type OrderCompletedEvent struct {
	OrderID          uuid.UUID   `json:"order_id"`
	ItemID           uuid.UUID   `json:"item_id"`
	ItemType         string      `json:"item_type"`
	Quantity         int32       `json:"quantity"`
	BuyerEmail       string      `json:"buyer_email"`
	BuyerName        string      `json:"buyer_name"`
	SeatIDs          []uuid.UUID `json:"seat_ids,omitempty"`
	TotalCents       int64       `json:"total_cents"`
	PaymentMethod    string      `json:"payment_method"`
	PaymentReference string      `json:"payment_reference"`
	CompletedAt      time.Time   `json:"completed_at"`
}

// OrderCashPendingEvent notifies box-office tooling that an order awaits an
// in-person cash payment before its window closes.
type OrderCashPendingEvent struct {
	OrderID    uuid.UUID `json:"order_id"`
	BuyerEmail string    `json:"buyer_email"`
	TotalCents int64     `json:"total_cents"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// OrderExpiredEvent is emitted when the sweeper or a lazy check retires an
// abandoned order and releases its inventory.
type OrderExpiredEvent struct {
	OrderID   uuid.UUID `json:"order_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Quantity  int32     `json:"quantity"`
	ExpiredAt time.Time `json:"expired_at"`
}
