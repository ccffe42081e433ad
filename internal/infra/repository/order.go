package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/order"
	"ticket-checkout/internal/domain/pricing"
	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

const orderColumns = `
	id, buyer_email, buyer_name, item_type, item_id, quantity, seat_ids,
	subtotal_cents, discount_cents, platform_fee_cents, processing_fee_cents, total_cents,
	discount_code_id, payment_method, payment_reference, status, reservation_id,
	expires_at, created_at, updated_at`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	quote := o.Quote()
	sel := o.Selection()

	_, err := tx.Exec(ctx, `
		INSERT INTO orders (
			id, buyer_email, buyer_name, item_type, item_id, quantity, seat_ids,
			subtotal_cents, discount_cents, platform_fee_cents, processing_fee_cents, total_cents,
			discount_code_id, status, reservation_id, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		o.ID(), o.Buyer().Email, o.Buyer().Name,
		string(sel.Type), sel.ItemID, sel.Quantity, o.SeatIDs(),
		quote.SubtotalCents, quote.DiscountCents, quote.PlatformFeeCents, quote.ProcessingFeeCents, quote.TotalCents,
		o.DiscountCodeID(), string(o.Status()), o.ReservationID(),
		o.ExpiresAt(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1`, id))
}

// FindByIDForUpdate takes a row lock so concurrent completion attempts on
// the same order serialize: the loser of the race sees the winner's
// terminal status and is rejected.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error) {
	return r.scanOne(tx.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
}

func (r *OrderRepository) Update(ctx context.Context, tx db.DBTX, o *order.Order) error {
	var method, ref *string
	if m := o.PaymentMethod(); m != nil {
		s := string(*m)
		method = &s
	}
	ref = o.PaymentReference()

	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET payment_method = $2, payment_reference = $3, status = $4, expires_at = $5, updated_at = $6
		WHERE id = $1`,
		o.ID(), method, ref, string(o.Status()), o.ExpiresAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindByReservationID resolves the order owning a reservation, used by the
// expiry sweep to expire the order together with its reservation.
func (r *OrderRepository) FindByReservationID(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (*order.Order, error) {
	return r.scanOne(dbtx.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE reservation_id = $1`, reservationID))
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *OrderRepository) scanOne(row scannable) (*order.Order, error) {
	var (
		id               uuid.UUID
		buyerEmail       string
		buyerName        string
		itemType         string
		itemID           uuid.UUID
		quantity         int32
		seatIDs          []uuid.UUID
		quote            pricing.Quote
		discountCodeID   *uuid.UUID
		paymentMethod    *string
		paymentReference *string
		status           string
		reservationID    uuid.UUID
		expiresAt        time.Time
		createdAt        time.Time
		updatedAt        time.Time
	)

	err := row.Scan(
		&id, &buyerEmail, &buyerName, &itemType, &itemID, &quantity, &seatIDs,
		&quote.SubtotalCents, &quote.DiscountCents, &quote.PlatformFeeCents, &quote.ProcessingFeeCents, &quote.TotalCents,
		&discountCodeID, &paymentMethod, &paymentReference, &status, &reservationID,
		&expiresAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	var method *order.PaymentMethod
	if paymentMethod != nil {
		m := order.PaymentMethod(*paymentMethod)
		method = &m
	}

	return order.Reconstruct(
		id,
		order.Buyer{Email: buyerEmail, Name: buyerName},
		order.Selection{Type: catalog.ItemType(itemType), ItemID: itemID, Quantity: quantity},
		seatIDs,
		quote,
		discountCodeID,
		method,
		paymentReference,
		order.Status(status),
		reservationID,
		expiresAt, createdAt, updatedAt,
	), nil
}
