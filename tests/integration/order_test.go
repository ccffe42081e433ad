//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	reqdto "ticket-checkout/internal/handler/dto/request"
	"ticket-checkout/internal/infra/repository"
	"ticket-checkout/internal/pkg/clock"
	"ticket-checkout/internal/pkg/config"
	"ticket-checkout/internal/usecase"
	"ticket-checkout/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(pool *pgxpool.Pool, idempotencyRepo usecase.IdempotencyRepository) usecase.OrderUseCase {
	return usecase.NewOrderUseCase(
		repository.NewOrderRepository(pool),
		repository.NewInventoryRepository(),
		repository.NewCatalogRepository(pool),
		repository.NewDiscountRepository(pool),
		idempotencyRepo,
		repository.NewWaitlistRepository(pool),
		nil, // no seated items in these scenarios
		nil, // no events in these scenarios
		pool,
		clock.NewRealClock(),
		config.CheckoutConfig{
			ReservationTTL: 20 * time.Minute,
			CashWindow:     30 * time.Minute,
			SeatHoldTTL:    5 * time.Minute,
			IdempotencyTTL: 24 * time.Hour,
		},
	)
}

// racedIdempotencyRepo reproduces a lost same-key race: the first Get
// returns the processing row, then a concurrent retry "wins" by completing
// the key before the caller reaches MarkCompleted.
type racedIdempotencyRepo struct {
	*repository.IdempotencyRepository
	pool     *pgxpool.Pool
	winnerID uuid.UUID
	raced    bool
}

func (r *racedIdempotencyRepo) Get(ctx context.Context, key uuid.UUID) (*readmodel.IdempotencyKeyRM, error) {
	rec, err := r.IdempotencyRepository.Get(ctx, key)
	if err != nil || r.raced {
		return rec, err
	}
	r.raced = true
	_, err = r.pool.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', result_order_id = $2
		WHERE key = $1`,
		key, r.winnerID,
	)
	return rec, err
}

func TestCreateOrder_LostSameKeyRaceReplaysWinner(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	tierID := seedTier(t, pool, 10)
	req := reqdto.CreateOrderRequest{
		ItemType:   "TIER",
		ItemID:     tierID,
		Quantity:   2,
		BuyerEmail: "buyer@example.com",
		BuyerName:  "Test Buyer",
	}

	// The winner creates its order through the plain path first.
	plain := newOrderService(pool, repository.NewIdempotencyRepository(pool))
	winner, err := plain.CreateOrder(ctx, req, uuid.New())
	require.NoError(t, err)

	// The loser reads its own processing row, then has the winner's result
	// land on the key before its transaction can mark completion.
	raced := &racedIdempotencyRepo{
		IdempotencyRepository: repository.NewIdempotencyRepository(pool),
		pool:                  pool,
		winnerID:              winner.ID(),
	}
	loser := newOrderService(pool, raced)

	got, err := loser.CreateOrder(ctx, req, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, winner.ID(), got.ID(), "loser should replay the winning order")

	// The loser's transaction rolled back: one order row, one reservation.
	var orderCount int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM orders WHERE item_id = $1`, tierID,
	).Scan(&orderCount))
	assert.Equal(t, 1, orderCount)

	_, reserved := tierCounters(t, pool, tierID)
	assert.Equal(t, int32(2), reserved)
}
