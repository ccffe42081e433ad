package order

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/pricing"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrMissingBuyerEmail    = errors.New("buyer email is required")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrNotPending           = errors.New("order is not pending")
	ErrNotCashPending       = errors.New("order is not awaiting cash confirmation")
	ErrAlreadyTerminal      = errors.New("order already reached a terminal state")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrEmptyPaymentRef      = errors.New("payment reference is required")
	ErrNotFree              = errors.New("order total is not zero")
	ErrQuoteMismatch        = errors.New("quote totals do not reconcile")
)

// Order is created and exclusively mutated here; payment-confirmation and
// fulfillment collaborators read it. Every transition is a method so the
// one-terminal-outcome invariant cannot be bypassed.
type Order struct {
	id               uuid.UUID
	buyer            Buyer
	selection        Selection
	seatIDs          []uuid.UUID
	quote            pricing.Quote
	discountCodeID   *uuid.UUID
	paymentMethod    *PaymentMethod
	paymentReference *string
	status           Status
	reservationID    uuid.UUID
	expiresAt        time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewPendingOrder builds a freshly reserved order. The quote must have been
// recomputed server-side; it is checked for internal consistency here so a
// partially-built quote can never be persisted.
func NewPendingOrder(
	buyer Buyer,
	selection Selection,
	seatIDs []uuid.UUID,
	quote pricing.Quote,
	discountCodeID *uuid.UUID,
	reservationID uuid.UUID,
	now time.Time,
	ttl time.Duration,
) (*Order, error) {
	if selection.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if buyer.Email == "" {
		return nil, ErrMissingBuyerEmail
	}
	if quote.TotalCents != quote.SubtotalCents-quote.DiscountCents+quote.PlatformFeeCents+quote.ProcessingFeeCents ||
		quote.TotalCents < 0 {
		return nil, ErrQuoteMismatch
	}

	return &Order{
		id:             uuid.New(),
		buyer:          buyer,
		selection:      selection,
		seatIDs:        seatIDs,
		quote:          quote,
		discountCodeID: discountCodeID,
		status:         StatusPending,
		reservationID:  reservationID,
		expiresAt:      now.Add(ttl),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	buyer Buyer,
	selection Selection,
	seatIDs []uuid.UUID,
	quote pricing.Quote,
	discountCodeID *uuid.UUID,
	paymentMethod *PaymentMethod,
	paymentReference *string,
	status Status,
	reservationID uuid.UUID,
	expiresAt, createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		buyer:            buyer,
		selection:        selection,
		seatIDs:          seatIDs,
		quote:            quote,
		discountCodeID:   discountCodeID,
		paymentMethod:    paymentMethod,
		paymentReference: paymentReference,
		status:           status,
		reservationID:    reservationID,
		expiresAt:        expiresAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Complete finalizes a pending order through exactly one payment rail.
// CASH moves to CASH_PENDING with the confirmation window instead of
// completing outright; FREE is only allowed on zero-total orders. A second
// call on the same order is rejected, never ignored: duplicate provider
// webhooks must surface as ORDER_NOT_PENDING upstream.
func (o *Order) Complete(method PaymentMethod, paymentReference string, now time.Time, cashWindow time.Duration) error {
	if o.status != StatusPending {
		return ErrNotPending
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	if paymentReference == "" {
		return ErrEmptyPaymentRef
	}
	if method == MethodFree && o.quote.TotalCents != 0 {
		return ErrNotFree
	}
	if o.HasExpired(now) {
		return ErrAlreadyTerminal
	}

	o.paymentMethod = &method
	o.paymentReference = &paymentReference
	if method == MethodCash {
		o.status = StatusCashPending
		o.expiresAt = now.Add(cashWindow)
	} else {
		o.status = StatusCompleted
	}
	o.updatedAt = now
	return nil
}

// ConfirmCash records staff verification of physical payment.
func (o *Order) ConfirmCash(now time.Time) error {
	if o.status != StatusCashPending {
		return ErrNotCashPending
	}
	o.status = StatusCompleted
	o.updatedAt = now
	return nil
}

// Expire releases an order whose reservation or cash window lapsed. Only
// PENDING and CASH_PENDING orders expire; terminal orders are left alone.
func (o *Order) Expire(now time.Time) error {
	switch o.status {
	case StatusPending, StatusCashPending:
		o.status = StatusExpired
		o.updatedAt = now
		return nil
	default:
		return ErrAlreadyTerminal
	}
}

// Cancel is a buyer-initiated release before payment.
func (o *Order) Cancel(now time.Time) error {
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

func (o *Order) HasExpired(now time.Time) bool {
	return now.After(o.expiresAt)
}

func (o *Order) IsFree() bool {
	return o.quote.TotalCents == 0
}

func (o *Order) ID() uuid.UUID                   { return o.id }
func (o *Order) Buyer() Buyer                    { return o.buyer }
func (o *Order) Selection() Selection            { return o.selection }
func (o *Order) SeatIDs() []uuid.UUID            { return o.seatIDs }
func (o *Order) Quote() pricing.Quote            { return o.quote }
func (o *Order) DiscountCodeID() *uuid.UUID      { return o.discountCodeID }
func (o *Order) PaymentMethod() *PaymentMethod   { return o.paymentMethod }
func (o *Order) PaymentReference() *string       { return o.paymentReference }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) ReservationID() uuid.UUID        { return o.reservationID }
func (o *Order) ExpiresAt() time.Time            { return o.expiresAt }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }
