package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
	"ticket-checkout/internal/usecase/readmodel"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

// TryInsert claims the key. ON CONFLICT DO NOTHING makes the claim
// race-free: whichever request inserts first owns the key; everyone else
// reads the existing record and replays or rejects.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, endpoint, request_hash, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING`,
		key, endpoint, requestHash, expiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*readmodel.IdempotencyKeyRM, error) {
	var rec readmodel.IdempotencyKeyRM
	err := r.db.QueryRow(ctx, `
		SELECT key, endpoint, request_hash, status, result_order_id, expires_at
		FROM idempotency_keys
		WHERE key = $1`,
		key,
	).Scan(&rec.Key, &rec.Endpoint, &rec.RequestHash, &rec.Status, &rec.ResultOrderID, &rec.ExpiresAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, resultOrderID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', result_order_id = $2
		WHERE key = $1 AND status = 'processing'`,
		key, resultOrderID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key is not processing", nil, infra.KindConflict)
	}
	return nil
}
