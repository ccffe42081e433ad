package order

import (
	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
)

// Status is the persisted order state. DRAFT exists only client-side and is
// never stored. COMPLETED, CANCELLED and EXPIRED are terminal; CASH_PENDING
// sits between PENDING and COMPLETED while staff verify physical payment.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusCompleted   Status = "COMPLETED"
	StatusCashPending Status = "CASH_PENDING"
	StatusCancelled   Status = "CANCELLED"
	StatusExpired     Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCashPending, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// PaymentMethod tags which rail settled the order. Provider-specific logic
// lives in adapters; all four rails converge on the same completion contract
// with an opaque payment reference.
type PaymentMethod string

const (
	MethodStripe PaymentMethod = "STRIPE"
	MethodPayPal PaymentMethod = "PAYPAL"
	MethodCash   PaymentMethod = "CASH"
	MethodFree   PaymentMethod = "FREE"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodStripe, MethodPayPal, MethodCash, MethodFree:
		return true
	default:
		return false
	}
}

// FreePaymentReference is the sentinel recorded on zero-total orders that
// skip the payment-provider round-trip entirely.
const FreePaymentReference = "free:no-payment"

// Selection is what the buyer put in the cart: one tier or one bundle, with
// a quantity.
type Selection struct {
	Type     catalog.ItemType
	ItemID   uuid.UUID
	Quantity int32
}

// Buyer is the minimal identity attached to an order.
type Buyer struct {
	Email string
	Name  string
}
