package discount

import (
	"errors"
	"time"

	"ticket-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrInvalidDiscountType = errors.New("invalid discount type")

type Type string

const (
	TypePercentage  Type = "PERCENTAGE"
	TypeFixedAmount Type = "FIXED_AMOUNT"
)

// Reason is the machine-readable rejection cause returned to the UI layer.
// Validation never fails with a generic error; callers render a precise
// message per reason.
type Reason string

const (
	ReasonInvalidCode  Reason = "invalid_code"
	ReasonExpired      Reason = "expired"
	ReasonNotEligible  Reason = "not_eligible"
	ReasonLimitReached Reason = "limit_reached"
)

// Code is a discount code as authored externally and consumed read-only at
// checkout. EligibleTierIDs of nil means the code applies to any item.
type Code struct {
	id              uuid.UUID
	code            string
	discountType    Type
	discountValue   int64 // percent for PERCENTAGE, cents for FIXED_AMOUNT
	eligibleTierIDs []uuid.UUID
	usageLimit      *int32
	usedCount       int32
	expiresAt       *time.Time
}

func NewCode(
	id uuid.UUID,
	code string,
	discountType Type,
	discountValue int64,
	eligibleTierIDs []uuid.UUID,
	usageLimit *int32,
	usedCount int32,
	expiresAt *time.Time,
) (*Code, error) {
	if discountType != TypePercentage && discountType != TypeFixedAmount {
		return nil, ErrInvalidDiscountType
	}

	return &Code{
		id:              id,
		code:            code,
		discountType:    discountType,
		discountValue:   discountValue,
		eligibleTierIDs: eligibleTierIDs,
		usageLimit:      usageLimit,
		usedCount:       usedCount,
		expiresAt:       expiresAt,
	}, nil
}

// Result is the outcome of a validation pass. When Valid is false, Reason
// carries the rejection cause and DiscountCents is zero.
type Result struct {
	Valid         bool
	DiscountCents int64
	Reason        Reason
}

// Validate re-checks the code against the live cart at validation time and
// recomputes the discount amount from the rule, never from a client-cached
// value. The returned amount is always bounded by the subtotal.
func (c *Code) Validate(cartItemIDs []uuid.UUID, subtotalCents int64, now time.Time) Result {
	if c.expiresAt != nil && now.After(*c.expiresAt) {
		return Result{Reason: ReasonExpired}
	}

	if c.usageLimit != nil && c.usedCount >= *c.usageLimit {
		return Result{Reason: ReasonLimitReached}
	}

	if !c.eligibleFor(cartItemIDs) {
		return Result{Reason: ReasonNotEligible}
	}

	return Result{Valid: true, DiscountCents: c.Amount(subtotalCents)}
}

// Amount computes the discount in cents against the given subtotal.
// Percentage discounts round half up; both kinds are capped at the subtotal.
func (c *Code) Amount(subtotalCents int64) int64 {
	var amount int64
	switch c.discountType {
	case TypePercentage:
		amount = pricing.RoundPercentage(subtotalCents, c.discountValue)
	case TypeFixedAmount:
		amount = c.discountValue
	}
	if amount > subtotalCents {
		amount = subtotalCents
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

// A code scoped to specific tiers must not discount a cart that contains
// none of them.
func (c *Code) eligibleFor(cartItemIDs []uuid.UUID) bool {
	if len(c.eligibleTierIDs) == 0 {
		return true
	}
	for _, eligible := range c.eligibleTierIDs {
		for _, item := range cartItemIDs {
			if eligible == item {
				return true
			}
		}
	}
	return false
}

func (c *Code) ID() uuid.UUID         { return c.id }
func (c *Code) CodeString() string    { return c.code }
func (c *Code) DiscountType() Type    { return c.discountType }
func (c *Code) DiscountValue() int64  { return c.discountValue }
func (c *Code) UsedCount() int32      { return c.usedCount }
func (c *Code) ExpiresAt() *time.Time { return c.expiresAt }
