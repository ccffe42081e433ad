//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyTryInsert_FirstWriterWins(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewIdempotencyRepository(pool)
	ctx := context.Background()

	key := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)

	// Concurrent claims on the same key must all succeed at the SQL level
	// (ON CONFLICT DO NOTHING) and leave exactly one row with the first
	// writer's hash.
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash := "hash-a"
			if i%2 == 1 {
				hash = "hash-b"
			}
			err := repo.TryInsert(ctx, key, "POST /orders", hash, expiresAt)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM idempotency_keys WHERE key = $1`, key).Scan(&count))
	assert.Equal(t, 1, count)

	rec, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "POST /orders", rec.Endpoint)
	assert.Equal(t, "processing", rec.Status)
	assert.Contains(t, []string{"hash-a", "hash-b"}, rec.RequestHash)
}

func TestIdempotencyMarkCompleted(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewIdempotencyRepository(pool)
	ctx := context.Background()

	key := uuid.New()
	orderID := uuid.New()
	require.NoError(t, repo.TryInsert(ctx, key, "POST /orders", "hash", time.Now().Add(24*time.Hour)))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(ctx, tx, key, orderID))
	require.NoError(t, tx.Commit(ctx))

	rec, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "completed", rec.Status)
	require.NotNil(t, rec.ResultOrderID)
	assert.Equal(t, orderID, *rec.ResultOrderID)
}

func TestIdempotencyGet_UnknownKey(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewIdempotencyRepository(pool)

	_, err := repo.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
