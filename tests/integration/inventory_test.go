//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTier(t *testing.T, pool *pgxpool.Pool, capacity int32) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
		INSERT INTO ticket_tiers (name, price_cents, current_price_cents, capacity)
		VALUES ('General Admission', 5000, 5000, $1)
		RETURNING id`,
		capacity,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func tierCounters(t *testing.T, pool *pgxpool.Pool, tierID uuid.UUID) (sold, reserved int32) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT sold, reserved FROM ticket_tiers WHERE id = $1`, tierID,
	).Scan(&sold, &reserved)
	require.NoError(t, err)
	return sold, reserved
}

// reserveInTx runs one Reserve inside its own transaction, the way the
// order path does it in production.
func reserveInTx(ctx context.Context, pool *pgxpool.Pool, repo *repository.InventoryRepository, tierID uuid.UUID, qty int32) (uuid.UUID, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reservationID, err := repo.Reserve(ctx, tx, catalog.ItemTier, tierID, qty, time.Now().Add(20*time.Minute))
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, tx.Commit(ctx)
}

func TestInventoryReserve_NeverOversells(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewInventoryRepository()
	ctx := context.Background()

	const capacity = 10
	const buyers = 50
	tierID := seedTier(t, pool, capacity)

	var wg sync.WaitGroup
	results := make(chan error, buyers)

	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reserveInTx(ctx, pool, repo, tierID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, soldOut int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case infra.IsKind(err, infra.KindSoldOut):
			soldOut++
		default:
			t.Fatalf("unexpected reserve error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded, "exactly capacity buyers should win")
	assert.Equal(t, buyers-capacity, soldOut, "everyone else should see SOLD_OUT")

	sold, reserved := tierCounters(t, pool, tierID)
	assert.Equal(t, int32(0), sold)
	assert.Equal(t, int32(capacity), reserved)
}

func TestInventoryReserve_RejectsQuantityAboveRemaining(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewInventoryRepository()
	ctx := context.Background()

	tierID := seedTier(t, pool, 5)

	_, err := reserveInTx(ctx, pool, repo, tierID, 3)
	require.NoError(t, err)

	_, err = reserveInTx(ctx, pool, repo, tierID, 3)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindSoldOut))

	// the failed attempt must not leak units
	_, reserved := tierCounters(t, pool, tierID)
	assert.Equal(t, int32(3), reserved)
}

func TestInventoryCommit_MovesReservedToSold(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewInventoryRepository()
	ctx := context.Background()

	tierID := seedTier(t, pool, 10)
	reservationID, err := reserveInTx(ctx, pool, repo, tierID, 4)
	require.NoError(t, err)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Commit(ctx, tx, reservationID))
	require.NoError(t, tx.Commit(ctx))

	sold, reserved := tierCounters(t, pool, tierID)
	assert.Equal(t, int32(4), sold)
	assert.Equal(t, int32(0), reserved)

	// a second commit must not double-count
	tx, err = pool.Begin(ctx)
	require.NoError(t, err)
	err = repo.Commit(ctx, tx, reservationID)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	_ = tx.Rollback(ctx)

	sold, reserved = tierCounters(t, pool, tierID)
	assert.Equal(t, int32(4), sold)
	assert.Equal(t, int32(0), reserved)
}

func TestInventoryRelease_ReturnsUnitsOnce(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewInventoryRepository()
	ctx := context.Background()

	tierID := seedTier(t, pool, 10)
	reservationID, err := reserveInTx(ctx, pool, repo, tierID, 4)
	require.NoError(t, err)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Release(ctx, tx, reservationID))
	require.NoError(t, tx.Commit(ctx))

	_, reserved := tierCounters(t, pool, tierID)
	assert.Equal(t, int32(0), reserved)

	// release racing with a sweep is a no-op on the second claim
	tx, err = pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Release(ctx, tx, reservationID))
	require.NoError(t, tx.Commit(ctx))

	_, reserved = tierCounters(t, pool, tierID)
	assert.Equal(t, int32(0), reserved)
}

func TestInventoryFindDue_ReturnsOnlyLapsedActiveReservations(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewInventoryRepository()
	ctx := context.Background()

	tierID := seedTier(t, pool, 20)

	insertReservation := func(expiresAt time.Time) uuid.UUID {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		id, err := repo.Reserve(ctx, tx, catalog.ItemTier, tierID, 1, expiresAt)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		return id
	}

	now := time.Now()
	lapsed := insertReservation(now.Add(-time.Minute))
	fresh := insertReservation(now.Add(20 * time.Minute))

	released := insertReservation(now.Add(-time.Minute))
	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Release(ctx, tx, released))
	require.NoError(t, tx.Commit(ctx))

	due, err := repo.FindDue(ctx, pool, now, 100)
	require.NoError(t, err)
	assert.Contains(t, due, lapsed)
	assert.NotContains(t, due, fresh)
	assert.NotContains(t, due, released)
}

func TestInventoryExtendExpiry(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewInventoryRepository()
	ctx := context.Background()

	tierID := seedTier(t, pool, 10)
	reservationID, err := reserveInTx(ctx, pool, repo, tierID, 1)
	require.NoError(t, err)

	extended := time.Now().Add(48 * time.Hour)
	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.ExtendExpiry(ctx, tx, reservationID, extended))
	require.NoError(t, tx.Commit(ctx))

	due, err := repo.FindDue(ctx, pool, time.Now().Add(time.Hour), 100)
	require.NoError(t, err)
	assert.NotContains(t, due, reservationID)

	// released reservations cannot be extended back to life
	tx, err = pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Release(ctx, tx, reservationID))
	err = repo.ExtendExpiry(ctx, tx, reservationID, extended)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	_ = tx.Rollback(ctx)
}
