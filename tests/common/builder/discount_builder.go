//go:build unit || integration

package builder

import (
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/discount"
)

// DiscountCodeBuilder assembles a discount code; the default is an
// unrestricted 20% off with no expiry and no usage limit.
type DiscountCodeBuilder struct {
	ID              uuid.UUID
	Code            string
	DiscountType    discount.Type
	DiscountValue   int64
	EligibleTierIDs []uuid.UUID
	UsageLimit      *int32
	UsedCount       int32
	ExpiresAt       *time.Time
}

func NewDiscountCodeBuilder() *DiscountCodeBuilder {
	return &DiscountCodeBuilder{
		ID:            uuid.New(),
		Code:          "SPRING20",
		DiscountType:  discount.TypePercentage,
		DiscountValue: 20,
	}
}

func (b *DiscountCodeBuilder) WithType(t discount.Type, value int64) *DiscountCodeBuilder {
	b.DiscountType = t
	b.DiscountValue = value
	return b
}

func (b *DiscountCodeBuilder) WithEligibleTiers(tierIDs ...uuid.UUID) *DiscountCodeBuilder {
	b.EligibleTierIDs = tierIDs
	return b
}

func (b *DiscountCodeBuilder) WithUsageLimit(limit, used int32) *DiscountCodeBuilder {
	b.UsageLimit = &limit
	b.UsedCount = used
	return b
}

func (b *DiscountCodeBuilder) WithExpiresAt(t time.Time) *DiscountCodeBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *DiscountCodeBuilder) BuildDomain() (*discount.Code, error) {
	return discount.NewCode(
		b.ID,
		b.Code,
		b.DiscountType,
		b.DiscountValue,
		b.EligibleTierIDs,
		b.UsageLimit,
		b.UsedCount,
		b.ExpiresAt,
	)
}
