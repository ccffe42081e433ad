package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticket-checkout/internal/domain/order"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/queue"
	"ticket-checkout/internal/pkg/clock"
	"ticket-checkout/internal/pkg/config"
	"ticket-checkout/internal/pkg/errs"
)

// ExpiryUseCase is the background half of reservation TTLs. The lazy check
// at settlement time catches orders someone touches; the sweep catches the
// ones nobody ever touches again.
type ExpiryUseCase interface {
	Sweep(ctx context.Context) (int, error)
}

type expiryUseCaseImpl struct {
	orderRepo     OrderRepository
	inventoryRepo InventoryRepository
	catalogRepo   CatalogRepository
	seatStore     SeatStore
	publisher     EventPublisher
	db            *pgxpool.Pool
	clock         clock.Clock
	cfg           config.CheckoutConfig
}

func NewExpiryUseCase(
	orderRepo OrderRepository,
	inventoryRepo InventoryRepository,
	catalogRepo CatalogRepository,
	seatStore SeatStore,
	publisher EventPublisher,
	pool *pgxpool.Pool,
	clock clock.Clock,
	cfg config.CheckoutConfig,
) ExpiryUseCase {
	return &expiryUseCaseImpl{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		catalogRepo:   catalogRepo,
		seatStore:     seatStore,
		publisher:     publisher,
		db:            pool,
		clock:         clock,
		cfg:           cfg,
	}
}

// Sweep releases one batch of overdue reservations and expires their
// orders. Each reservation is handled in its own transaction so one bad
// row cannot wedge the whole sweep; the status-guarded release makes the
// sweep race-safe against concurrent settlement of the same order.
func (u *expiryUseCaseImpl) Sweep(ctx context.Context) (int, error) {
	now := u.clock.Now()

	due, err := u.inventoryRepo.FindDue(ctx, u.db, now, int32(u.cfg.SweepBatchLimit))
	if err != nil {
		return 0, errs.Wrap(err, "failed to list due reservations")
	}

	expired := 0
	for _, reservationID := range due {
		o, err := u.expireOne(ctx, reservationID)
		if err != nil {
			slog.Warn("failed to expire reservation", "reservation_id", reservationID, "error", err)
			continue
		}
		expired++
		if o != nil {
			u.afterExpiry(ctx, o)
		}
	}
	return expired, nil
}

func (u *expiryUseCaseImpl) expireOne(ctx context.Context, reservationID uuid.UUID) (*order.Order, error) {
	now := u.clock.Now()

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.inventoryRepo.Release(ctx, tx, reservationID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	o, err := u.orderRepo.FindByReservationID(ctx, tx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Reservation without an order: created but the order INSERT
			// never landed. Releasing it is the whole job.
			return nil, errs.Wrap(tx.Commit(ctx), "failed to commit transaction")
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if o.Status().IsTerminal() {
		return nil, errs.Wrap(tx.Commit(ctx), "failed to commit transaction")
	}

	if err := o.Expire(now); err != nil {
		return nil, mapOrderTransitionErr(err)
	}
	if err := u.orderRepo.Update(ctx, tx, o); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return o, nil
}

func (u *expiryUseCaseImpl) afterExpiry(ctx context.Context, o *order.Order) {
	if len(o.SeatIDs()) > 0 {
		item, err := resolveItem(ctx, u.catalogRepo, string(o.Selection().Type), o.Selection().ItemID)
		if err == nil && item.SeatingSection != nil {
			if err := u.seatStore.Release(ctx, *item.SeatingSection, o.SeatIDs()); err != nil {
				slog.Warn("failed to release seats", "order_id", o.ID(), "error", err)
			}
		}
	}

	event := queue.OrderExpiredEvent{
		OrderID:   o.ID(),
		ItemID:    o.Selection().ItemID,
		Quantity:  o.Selection().Quantity,
		ExpiredAt: o.UpdatedAt(),
	}
	if err := u.publisher.Publish(ctx, queue.RouteOrderExpired, event); err != nil {
		slog.Warn("failed to publish order event", "route", queue.RouteOrderExpired, "error", err)
	}
}
