package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/discount"
	"ticket-checkout/internal/domain/order"
	"ticket-checkout/internal/domain/pricing"
	"ticket-checkout/internal/domain/seating"
	reqdto "ticket-checkout/internal/handler/dto/request"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
	"ticket-checkout/internal/infra/payment"
	"ticket-checkout/internal/infra/queue"
	"ticket-checkout/internal/pkg/clock"
	"ticket-checkout/internal/pkg/config"
	"ticket-checkout/internal/pkg/errs"
	"ticket-checkout/internal/usecase/readmodel"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrSoldOut                = errors.New("insufficient inventory")
	ErrOrderNotPending        = errors.New("order is not pending")
	ErrOrderNotCashPending    = errors.New("order is not awaiting cash confirmation")
	ErrOrderExpired           = errors.New("order has expired")
	ErrMalformedPaymentRef    = errors.New("malformed payment reference")
	ErrDiscountRejected       = errors.New("discount code rejected")
	ErrIdempotencyKeyRequired = errors.New("idempotency-key header required")
	ErrDuplicateRequest       = errors.New("duplicate order request")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrIdempotencyCheckFailed  = errors.New("idempotency check failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// errLostIdempotencyRace signals that a concurrent retry carrying the same
// key completed the order between our key read and our MarkCompleted.
var errLostIdempotencyRace = errors.New("lost idempotency race")

// DiscountRejectedError carries the machine-readable reason alongside the
// ErrDiscountRejected sentinel so the handler can surface it to the UI.
type DiscountRejectedError struct {
	Reason discount.Reason
}

func (e *DiscountRejectedError) Error() string {
	return fmt.Sprintf("discount code rejected: %s", e.Reason)
}

func (e *DiscountRejectedError) Unwrap() error {
	return ErrDiscountRejected
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error)
	Update(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByReservationID(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (*order.Order, error)
}

type InventoryRepository interface {
	Reserve(ctx context.Context, tx db.DBTX, itemType catalog.ItemType, itemID uuid.UUID, quantity int32, expiresAt time.Time) (uuid.UUID, error)
	Release(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error
	Commit(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error
	ExtendExpiry(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, expiresAt time.Time) error
	FindDue(ctx context.Context, dbtx db.DBTX, now time.Time, limit int32) ([]uuid.UUID, error)
}

type DiscountRepository interface {
	DiscountRepositoryReader
	IncrementUsage(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key uuid.UUID) (*readmodel.IdempotencyKeyRM, error)
	MarkCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, resultOrderID uuid.UUID) error
}

type WaitlistRepository interface {
	Join(ctx context.Context, tierID *uuid.UUID, email, name string, quantity int32) (uuid.UUID, error)
}

// SeatStore is the seating collaborator's availability surface: a read
// snapshot plus soft holds keyed by checkout session.
type SeatStore interface {
	Snapshot(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) ([]seating.Seat, error)
	Hold(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID, sessionID string, ttl time.Duration) error
	MarkSold(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) error
	Release(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, idempotencyKey uuid.UUID) (*order.Order, error)
	CompleteOrder(ctx context.Context, orderID uuid.UUID, req reqdto.CompleteOrderRequest) (*order.Order, error)
	ConfirmCashPayment(ctx context.Context, orderID uuid.UUID) (*order.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error)
	JoinWaitlist(ctx context.Context, req reqdto.JoinWaitlistRequest) (uuid.UUID, error)
}

type orderUseCaseImpl struct {
	orderRepo       OrderRepository
	inventoryRepo   InventoryRepository
	catalogRepo     CatalogRepository
	discountRepo    DiscountRepository
	idempotencyRepo IdempotencyRepository
	waitlistRepo    WaitlistRepository
	seatStore       SeatStore
	publisher       EventPublisher
	db              *pgxpool.Pool
	clock           clock.Clock
	cfg             config.CheckoutConfig
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	inventoryRepo InventoryRepository,
	catalogRepo CatalogRepository,
	discountRepo DiscountRepository,
	idempotencyRepo IdempotencyRepository,
	waitlistRepo WaitlistRepository,
	seatStore SeatStore,
	publisher EventPublisher,
	pool *pgxpool.Pool,
	clock clock.Clock,
	cfg config.CheckoutConfig,
) OrderUseCase {
	return &orderUseCaseImpl{
		orderRepo:       orderRepo,
		inventoryRepo:   inventoryRepo,
		catalogRepo:     catalogRepo,
		discountRepo:    discountRepo,
		idempotencyRepo: idempotencyRepo,
		waitlistRepo:    waitlistRepo,
		seatStore:       seatStore,
		publisher:       publisher,
		db:              pool,
		clock:           clock,
		cfg:             cfg,
	}
}

// CreateOrder atomically reserves inventory and persists a PENDING order.
// Retried submissions carrying the same Idempotency-Key replay the first
// outcome instead of reserving twice.
func (u *orderUseCaseImpl) CreateOrder(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	idempotencyKey uuid.UUID,
) (*order.Order, error) {
	requestHash := calculateHash(req)
	keyExpiresAt := u.clock.Now().Add(u.cfg.IdempotencyTTL)

	existing, err := u.handleIdempotency(ctx, idempotencyKey, requestHash, keyExpiresAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := u.createNewOrder(ctx, req, idempotencyKey)
	if errors.Is(err, errLostIdempotencyRace) {
		return u.replayCompletedOrder(ctx, idempotencyKey)
	}
	return created, err
}

func (u *orderUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*order.Order, error) {
	if err := u.idempotencyRepo.TryInsert(ctx, idempotencyKey, "POST /orders", requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := u.idempotencyRepo.Get(ctx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultOrderID != nil {
			return u.orderRepo.FindByID(ctx, *existing.ResultOrderID)
		}
		return nil, errs.New("completed request missing result order ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, nil

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (u *orderUseCaseImpl) createNewOrder(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	idempotencyKey uuid.UUID,
) (*order.Order, error) {
	item, err := resolveItem(ctx, u.catalogRepo, req.ItemType, req.ItemID)
	if err != nil {
		return nil, err
	}

	if err := u.gateSeatSelection(ctx, item, req); err != nil {
		return nil, err
	}

	created, err := u.priceAndPersistOrder(ctx, req, item, idempotencyKey)
	if err != nil {
		// Holds taken in gateSeatSelection would otherwise linger until
		// their TTL lapses.
		u.releaseSeats(ctx, item, req.SeatIDs)
		return nil, err
	}
	return created, nil
}

func (u *orderUseCaseImpl) priceAndPersistOrder(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	item catalog.Item,
	idempotencyKey uuid.UUID,
) (*order.Order, error) {
	discountCode, discountCents, err := u.validateAndGetDiscount(ctx, req, item)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.Calculate(item.UnitPriceCents, req.Quantity, discountCents, item.PaymentModel)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	return u.executeOrderTransaction(ctx, req, item, quote, discountCode, idempotencyKey)
}

// gateSeatSelection enforces exact seat counts for seated items and takes
// soft holds on the chosen seats. Seats shown available in the UI may have
// been claimed since selection, so the snapshot is re-read here.
func (u *orderUseCaseImpl) gateSeatSelection(ctx context.Context, item catalog.Item, req reqdto.CreateOrderRequest) error {
	if !seating.Required(item) {
		if len(req.SeatIDs) > 0 {
			return errs.Mark(seating.ErrCountMismatch, ErrDomainValidationFailed)
		}
		return nil
	}

	sectionID := *item.SeatingSection
	snapshot, err := u.seatStore.Snapshot(ctx, sectionID, req.SeatIDs)
	if err != nil {
		return errs.Wrap(err, "failed to read seat snapshot")
	}

	if err := seating.Validate(req.Quantity, req.SeatIDs, snapshot, req.SessionID); err != nil {
		return err
	}

	return u.seatStore.Hold(ctx, sectionID, req.SeatIDs, req.SessionID, u.cfg.SeatHoldTTL)
}

func (u *orderUseCaseImpl) validateAndGetDiscount(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	item catalog.Item,
) (*discount.Code, int64, error) {
	code := req.GetDiscountCode()
	if code == nil {
		return nil, 0, nil
	}

	codeEntity, err := u.discountRepo.FindByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, &DiscountRejectedError{Reason: discount.ReasonInvalidCode}
		}
		return nil, 0, errs.Wrap(err, "failed to find discount code")
	}

	subtotal := item.UnitPriceCents * int64(req.Quantity)
	result := codeEntity.Validate([]uuid.UUID{item.ID}, subtotal, u.clock.Now())
	if !result.Valid {
		return nil, 0, &DiscountRejectedError{Reason: result.Reason}
	}

	return codeEntity, result.DiscountCents, nil
}

func (u *orderUseCaseImpl) executeOrderTransaction(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	item catalog.Item,
	quote pricing.Quote,
	discountCode *discount.Code,
	idempotencyKey uuid.UUID,
) (*order.Order, error) {
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

	reservationID, err := u.inventoryRepo.Reserve(ctx, tx, item.Type, item.ID, req.Quantity, now.Add(u.cfg.ReservationTTL))
	if err != nil {
		if infra.IsKind(err, infra.KindSoldOut) {
			return nil, ErrSoldOut
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var discountCodeID *uuid.UUID
	if discountCode != nil {
		if err := u.discountRepo.IncrementUsage(ctx, tx, discountCode.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, &DiscountRejectedError{Reason: discount.ReasonLimitReached}
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id := discountCode.ID()
		discountCodeID = &id
	}

	orderEntity, err := order.NewPendingOrder(
		order.Buyer{Email: req.BuyerEmail, Name: req.BuyerName},
		order.Selection{Type: item.Type, ItemID: item.ID, Quantity: req.Quantity},
		req.SeatIDs,
		quote,
		discountCodeID,
		reservationID,
		now,
		u.cfg.ReservationTTL,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := u.orderRepo.Create(ctx, tx, orderEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.idempotencyRepo.MarkCompleted(ctx, tx, idempotencyKey, orderEntity.ID()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errLostIdempotencyRace
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return orderEntity, nil
}

// CompleteOrder settles a PENDING order through one payment rail. Stripe
// and PayPal complete immediately; CASH parks the order for staff
// confirmation; FREE is reserved for zero-total orders. Expiry is checked
// lazily here so an abandoned order cannot complete after its window even
// if the sweeper has not reached it yet.
func (u *orderUseCaseImpl) CompleteOrder(
	ctx context.Context,
	orderID uuid.UUID,
	req reqdto.CompleteOrderRequest,
) (*order.Order, error) {
	method := order.PaymentMethod(req.PaymentMethod)

	reference := order.FreePaymentReference
	if method != order.MethodFree {
		normalized, err := payment.NormalizeReference(method, req.PaymentReference)
		if err != nil {
			return nil, errs.Mark(err, ErrMalformedPaymentRef)
		}
		reference = normalized
	}

	var completed *order.Order
	err := u.withOrderLock(ctx, orderID, func(tx db.DBTX, o *order.Order) error {
		now := u.clock.Now()

		if expired, err := u.lazyExpire(ctx, tx, o, now); err != nil {
			return err
		} else if expired {
			return ErrOrderExpired
		}

		if err := o.Complete(method, reference, now, u.cfg.CashWindow); err != nil {
			return mapOrderTransitionErr(err)
		}

		switch o.Status() {
		case order.StatusCompleted:
			if err := u.inventoryRepo.Commit(ctx, tx, o.ReservationID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		case order.StatusCashPending:
			if err := u.inventoryRepo.ExtendExpiry(ctx, tx, o.ReservationID(), o.ExpiresAt()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := u.orderRepo.Update(ctx, tx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		completed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.afterSettlement(ctx, completed)
	return completed, nil
}

// ConfirmCashPayment is the staff-side half of the cash rail: it converts a
// CASH_PENDING order into COMPLETED and commits its reservation.
func (u *orderUseCaseImpl) ConfirmCashPayment(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	var confirmed *order.Order
	err := u.withOrderLock(ctx, orderID, func(tx db.DBTX, o *order.Order) error {
		now := u.clock.Now()

		if expired, err := u.lazyExpire(ctx, tx, o, now); err != nil {
			return err
		} else if expired {
			return ErrOrderExpired
		}

		if err := o.ConfirmCash(now); err != nil {
			return mapOrderTransitionErr(err)
		}

		if err := u.inventoryRepo.Commit(ctx, tx, o.ReservationID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := u.orderRepo.Update(ctx, tx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		confirmed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.afterSettlement(ctx, confirmed)
	return confirmed, nil
}

// CancelOrder is the buyer-initiated release of a PENDING order. The
// reservation's units return to the pool immediately rather than waiting
// out the TTL.
func (u *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	var cancelled *order.Order
	err := u.withOrderLock(ctx, orderID, func(tx db.DBTX, o *order.Order) error {
		if err := o.Cancel(u.clock.Now()); err != nil {
			return mapOrderTransitionErr(err)
		}

		if err := u.inventoryRepo.Release(ctx, tx, o.ReservationID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := u.orderRepo.Update(ctx, tx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.releaseOrderSeats(ctx, cancelled)
	return cancelled, nil
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return o, nil
}

func (u *orderUseCaseImpl) JoinWaitlist(ctx context.Context, req reqdto.JoinWaitlistRequest) (uuid.UUID, error) {
	id, err := u.waitlistRepo.Join(ctx, req.TierID, req.Email, req.Name, req.Quantity)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to join waitlist")
	}
	return id, nil
}

// replayCompletedOrder returns the order recorded by the request that won a
// same-key race. The winner marked the key completed inside its own
// transaction, so by the time the loser gets here the result id is durable.
func (u *orderUseCaseImpl) replayCompletedOrder(ctx context.Context, idempotencyKey uuid.UUID) (*order.Order, error) {
	rec, err := u.idempotencyRepo.Get(ctx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if rec.Status != "completed" || rec.ResultOrderID == nil {
		return nil, ErrDuplicateRequest
	}
	return u.orderRepo.FindByID(ctx, *rec.ResultOrderID)
}

// withOrderLock runs fn against the order row locked FOR UPDATE, so
// concurrent settlement attempts are serialized at the database and the
// loser sees the winner's terminal state.
func (u *orderUseCaseImpl) withOrderLock(ctx context.Context, orderID uuid.UUID, fn func(tx db.DBTX, o *order.Order) error) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	o, err := u.orderRepo.FindByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := fn(tx, o); err != nil {
		return err
	}

	return errs.Wrap(tx.Commit(ctx), "failed to commit transaction")
}

// lazyExpire retires an overdue order inside the caller's transaction.
// Returns true when the order was expired (and its reservation released).
func (u *orderUseCaseImpl) lazyExpire(ctx context.Context, tx db.DBTX, o *order.Order, now time.Time) (bool, error) {
	if o.Status().IsTerminal() || !o.HasExpired(now) {
		return false, nil
	}

	if err := o.Expire(now); err != nil {
		return false, mapOrderTransitionErr(err)
	}
	if err := u.inventoryRepo.Release(ctx, tx, o.ReservationID()); err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := u.orderRepo.Update(ctx, tx, o); err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.releaseOrderSeats(ctx, o)
	return true, nil
}

// afterSettlement handles the non-transactional tail of a settlement:
// seat state and event publication. Failures are logged, never bubbled;
// the order is already committed and must not appear to fail.
func (u *orderUseCaseImpl) afterSettlement(ctx context.Context, o *order.Order) {
	switch o.Status() {
	case order.StatusCompleted:
		u.markOrderSeatsSold(ctx, o)
		u.publish(ctx, queue.RouteOrderCompleted, completedEvent(o))
	case order.StatusCashPending:
		u.publish(ctx, queue.RouteOrderCashPending, queue.OrderCashPendingEvent{
			OrderID:    o.ID(),
			BuyerEmail: o.Buyer().Email,
			TotalCents: o.Quote().TotalCents,
			ExpiresAt:  o.ExpiresAt(),
		})
	}
}

func completedEvent(o *order.Order) queue.OrderCompletedEvent {
	var method, reference string
	if o.PaymentMethod() != nil {
		method = string(*o.PaymentMethod())
	}
	if o.PaymentReference() != nil {
		reference = *o.PaymentReference()
	}
	return queue.OrderCompletedEvent{
		OrderID:          o.ID(),
		ItemID:           o.Selection().ItemID,
		ItemType:         string(o.Selection().Type),
		Quantity:         o.Selection().Quantity,
		BuyerEmail:       o.Buyer().Email,
		BuyerName:        o.Buyer().Name,
		SeatIDs:          o.SeatIDs(),
		TotalCents:       o.Quote().TotalCents,
		PaymentMethod:    method,
		PaymentReference: reference,
		CompletedAt:      o.UpdatedAt(),
	}
}

func (u *orderUseCaseImpl) publish(ctx context.Context, route string, event any) {
	if err := u.publisher.Publish(ctx, route, event); err != nil {
		slog.Warn("failed to publish order event", "route", route, "error", err)
	}
}

func (u *orderUseCaseImpl) markOrderSeatsSold(ctx context.Context, o *order.Order) {
	sectionID, seatIDs := u.seatSection(ctx, o)
	if sectionID == nil {
		return
	}
	if err := u.seatStore.MarkSold(ctx, *sectionID, seatIDs); err != nil {
		slog.Warn("failed to mark seats sold", "order_id", o.ID(), "error", err)
	}
}

func (u *orderUseCaseImpl) releaseOrderSeats(ctx context.Context, o *order.Order) {
	sectionID, seatIDs := u.seatSection(ctx, o)
	if sectionID == nil {
		return
	}
	if err := u.seatStore.Release(ctx, *sectionID, seatIDs); err != nil {
		slog.Warn("failed to release seats", "order_id", o.ID(), "error", err)
	}
}

func (u *orderUseCaseImpl) releaseSeats(ctx context.Context, item catalog.Item, seatIDs []uuid.UUID) {
	if item.SeatingSection == nil || len(seatIDs) == 0 {
		return
	}
	if err := u.seatStore.Release(ctx, *item.SeatingSection, seatIDs); err != nil {
		slog.Warn("failed to release seats", "error", err)
	}
}

// seatSection resolves the seating section of an order's item. Orders on
// unseated items return a nil section.
func (u *orderUseCaseImpl) seatSection(ctx context.Context, o *order.Order) (*uuid.UUID, []uuid.UUID) {
	if len(o.SeatIDs()) == 0 {
		return nil, nil
	}
	item, err := resolveItem(ctx, u.catalogRepo, string(o.Selection().Type), o.Selection().ItemID)
	if err != nil {
		slog.Warn("failed to resolve item for seat update", "order_id", o.ID(), "error", err)
		return nil, nil
	}
	return item.SeatingSection, o.SeatIDs()
}

func mapOrderTransitionErr(err error) error {
	switch {
	case errors.Is(err, order.ErrNotPending):
		return ErrOrderNotPending
	case errors.Is(err, order.ErrNotCashPending):
		return ErrOrderNotCashPending
	case errors.Is(err, order.ErrAlreadyTerminal):
		return ErrOrderExpired
	default:
		return errs.Mark(err, ErrDomainValidationFailed)
	}
}

func calculateHash(v any) string {
	data, _ := json.Marshal(v)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
