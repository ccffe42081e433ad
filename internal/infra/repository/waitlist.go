package repository

import (
	"context"

	"github.com/google/uuid"

	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
)

// WaitlistRepository stores join requests for sold-out inventory on behalf
// of the waitlist collaborator. Notification of freed inventory is that
// collaborator's concern, not this engine's.
type WaitlistRepository struct {
	db db.DBTX
}

func NewWaitlistRepository(dbtx db.DBTX) *WaitlistRepository {
	return &WaitlistRepository{db: dbtx}
}

func (r *WaitlistRepository) Join(ctx context.Context, tierID *uuid.UUID, email, name string, quantity int32) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO waitlist_entries (tier_id, email, name, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		tierID, email, name, quantity,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to join waitlist", err)
	}
	return id, nil
}
