package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
)

// InventoryRepository is the only code allowed to touch the sold/reserved
// counters. Reservation is a single conditional UPDATE so two buyers racing
// for the last unit resolve at the database row: one matches the guard, the
// other sees zero rows and gets SOLD_OUT.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

const reserveTierSQL = `
UPDATE ticket_tiers
SET reserved = reserved + $2
WHERE id = $1 AND sold + reserved + $2 <= capacity`

const reserveBundleSQL = `
UPDATE bundles
SET reserved = reserved + $2
WHERE id = $1 AND purchased + reserved + $2 <= available_count`

func (r *InventoryRepository) Reserve(
	ctx context.Context,
	tx db.DBTX,
	itemType catalog.ItemType,
	itemID uuid.UUID,
	quantity int32,
	expiresAt time.Time,
) (uuid.UUID, error) {
	guard := reserveTierSQL
	if itemType == catalog.ItemBundle {
		guard = reserveBundleSQL
	}

	tag, err := tx.Exec(ctx, guard, itemID, quantity)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to reserve inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("insufficient inventory", nil, infra.KindSoldOut)
	}

	var reservationID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO inventory_reservations (item_type, item_id, quantity, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		string(itemType), itemID, quantity, expiresAt,
	).Scan(&reservationID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to record reservation", err)
	}

	return reservationID, nil
}

// Release hands a still-active reservation's units back to the pool. It is
// a no-op for reservations already committed or released, so expiry sweeps
// and explicit cancels can race safely.
func (r *InventoryRepository) Release(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error {
	res, err := r.claim(ctx, tx, reservationID, "RELEASED")
	if err != nil || res == nil {
		return err
	}

	return r.adjustCounters(ctx, tx, res, `
		UPDATE ticket_tiers SET reserved = reserved - $2 WHERE id = $1`, `
		UPDATE bundles SET reserved = reserved - $2 WHERE id = $1`)
}

// Commit converts a reservation into permanent sold inventory.
func (r *InventoryRepository) Commit(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error {
	res, err := r.claim(ctx, tx, reservationID, "COMMITTED")
	if err != nil {
		return err
	}
	if res == nil {
		return infra.WrapRepoErr("reservation is not active", nil, infra.KindConflict)
	}

	return r.adjustCounters(ctx, tx, res, `
		UPDATE ticket_tiers SET reserved = reserved - $2, sold = sold + $2 WHERE id = $1`, `
		UPDATE bundles SET reserved = reserved - $2, purchased = purchased + $2 WHERE id = $1`)
}

// ExtendExpiry pushes an active reservation's deadline out, used when a cash
// order trades its checkout window for the longer staff-confirmation window.
func (r *InventoryRepository) ExtendExpiry(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, expiresAt time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE inventory_reservations SET expires_at = $2
		WHERE id = $1 AND status = 'ACTIVE'`,
		reservationID, expiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to extend reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation is not active", nil, infra.KindConflict)
	}
	return nil
}

type claimedReservation struct {
	itemType string
	itemID   uuid.UUID
	quantity int32
}

// claim flips an ACTIVE reservation to its new status and returns the row,
// or nil when the reservation was not active (already claimed elsewhere).
// The UPDATE's status guard is what makes release/commit race-safe.
func (r *InventoryRepository) claim(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, newStatus string) (*claimedReservation, error) {
	var res claimedReservation
	err := tx.QueryRow(ctx, `
		UPDATE inventory_reservations SET status = $2
		WHERE id = $1 AND status = 'ACTIVE'
		RETURNING item_type, item_id, quantity`,
		reservationID, newStatus,
	).Scan(&res.itemType, &res.itemID, &res.quantity)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to claim reservation", err)
	}
	return &res, nil
}

func (r *InventoryRepository) adjustCounters(ctx context.Context, tx db.DBTX, res *claimedReservation, tierSQL, bundleSQL string) error {
	sql := tierSQL
	if res.itemType == string(catalog.ItemBundle) {
		sql = bundleSQL
	}
	if _, err := tx.Exec(ctx, sql, res.itemID, res.quantity); err != nil {
		return infra.WrapRepoErr("failed to adjust inventory counters", err)
	}
	return nil
}

// FindDue returns reservations whose TTL elapsed, oldest first, for the
// expiry sweep. Orders referencing them are expired by the caller.
func (r *InventoryRepository) FindDue(ctx context.Context, dbtx db.DBTX, now time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id FROM inventory_reservations
		WHERE status = 'ACTIVE' AND expires_at <= $1
		ORDER BY expires_at
		LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due reservations", err)
	}
	return ids, nil
}
