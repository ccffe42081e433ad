package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/discount"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
)

type DiscountRepository struct {
	db db.DBTX
}

func NewDiscountRepository(dbtx db.DBTX) *DiscountRepository {
	return &DiscountRepository{db: dbtx}
}

func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*discount.Code, error) {
	var (
		id              uuid.UUID
		codeStr         string
		discountType    string
		discountValue   int64
		eligibleTierIDs []uuid.UUID
		usageLimit      *int32
		usedCount       int32
		expiresAt       *time.Time
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, code, discount_type, discount_value, eligible_tier_ids, usage_limit, used_count, expires_at
		FROM discount_codes
		WHERE code = $1`,
		code,
	).Scan(&id, &codeStr, &discountType, &discountValue, &eligibleTierIDs, &usageLimit, &usedCount, &expiresAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount code", err)
	}

	return discount.NewCode(
		id, codeStr,
		discount.Type(discountType), discountValue,
		eligibleTierIDs, usageLimit, usedCount, expiresAt,
	)
}

// IncrementUsage bumps used_count without exceeding the limit; the guard
// closes the race between two checkouts redeeming the last use of a code.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE discount_codes SET used_count = used_count + 1
		WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment discount usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount usage limit reached", nil, infra.KindConflict)
	}
	return nil
}
