package pricing

import "errors"

var (
	ErrInvalidUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidDiscount  = errors.New("discount cannot be negative")
)

// PaymentModel determines who carries the platform and processing fees.
// Under Prepay the organizer absorbs them; under PassThrough they are added
// on top of the buyer's total.
type PaymentModel string

const (
	ModelPrepay      PaymentModel = "PREPAY"
	ModelPassThrough PaymentModel = "PASS_THROUGH"
)

func (m PaymentModel) IsValid() bool {
	return m == ModelPrepay || m == ModelPassThrough
}

const (
	platformFeePermille   = 37  // 3.7%
	platformFeeFlatCents  = 179 // $1.79
	processingFeePermille = 29  // 2.9%
	processingFlatCents   = 30  // $0.30
)

// Quote is the fully derived price breakdown for a selection. All values are
// integer minor units (cents). TotalCents always equals
// SubtotalCents - DiscountCents + PlatformFeeCents + ProcessingFeeCents.
type Quote struct {
	SubtotalCents      int64
	DiscountCents      int64
	PlatformFeeCents   int64
	ProcessingFeeCents int64
	TotalCents         int64
}

// Calculate derives the quote from its inputs alone. It never reads shared
// state, so repeated calls with the same inputs return identical quotes.
//
// The processing fee compounds on top of the platform fee rather than being
// computed jointly from the pre-fee subtotal; this mirrors how payment
// processors pass their cut through on the already-fee'd amount. Each fee
// stage rounds half up independently.
func Calculate(unitPriceCents int64, quantity int32, discountCents int64, model PaymentModel) (Quote, error) {
	if unitPriceCents < 0 {
		return Quote{}, ErrInvalidUnitPrice
	}
	if quantity <= 0 {
		return Quote{}, ErrInvalidQuantity
	}
	if discountCents < 0 {
		return Quote{}, ErrInvalidDiscount
	}

	subtotal := unitPriceCents * int64(quantity)

	applied := discountCents
	if applied > subtotal {
		applied = subtotal
	}
	afterDiscount := subtotal - applied

	var platformFee, processingFee int64
	if model == ModelPassThrough && afterDiscount > 0 {
		platformFee = roundHalfUp(afterDiscount*platformFeePermille, 1000) + platformFeeFlatCents
		processingFee = roundHalfUp((afterDiscount+platformFee)*processingFeePermille, 1000) + processingFlatCents
	}

	return Quote{
		SubtotalCents:      subtotal,
		DiscountCents:      applied,
		PlatformFeeCents:   platformFee,
		ProcessingFeeCents: processingFee,
		TotalCents:         afterDiscount + platformFee + processingFee,
	}, nil
}

// IsFree reports whether the quote needs no payment-provider round-trip.
func (q Quote) IsFree() bool {
	return q.TotalCents == 0
}

// roundHalfUp divides numerator by denominator rounding half away from zero.
// Both arguments must be non-negative.
func roundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}

// RoundPercentage computes roundHalfUp(amount * percent / 100), used by the
// discount validator so percentage discounts round the same way fees do.
func RoundPercentage(amountCents, percent int64) int64 {
	return roundHalfUp(amountCents*percent, 100)
}
