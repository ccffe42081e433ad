package seating

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ticket-checkout/internal/domain/catalog"
)

var (
	ErrCountMismatch   = errors.New("seat count does not match quantity")
	ErrSeatUnavailable = errors.New("seat is no longer available")
)

// SeatStatus mirrors the seating collaborator's snapshot states.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatHeld      SeatStatus = "HELD"
	SeatSold      SeatStatus = "SOLD"
)

// Seat is one entry of the seating-availability snapshot. SessionID is set
// when the seat is soft-held; a hold by the purchasing session still counts
// as available to that session.
type Seat struct {
	ID        uuid.UUID
	Status    SeatStatus
	SessionID string
}

// UnavailableSeatError carries the specific seat that lost the race between
// seat-picking and order submission.
type UnavailableSeatError struct {
	SeatID uuid.UUID
}

func (e *UnavailableSeatError) Error() string {
	return fmt.Sprintf("seat %s is no longer available", e.SeatID)
}

func (e *UnavailableSeatError) Unwrap() error {
	return ErrSeatUnavailable
}

// Required reports whether checkout for the item must carry exactly
// quantity seat assignments.
func Required(item catalog.Item) bool {
	return item.SeatingSection != nil
}

// Validate re-checks a candidate seat set against the live snapshot at
// order-creation time, not just at selection time: concurrent buyers race
// for the same seats, so a seat shown available in the UI may already be
// gone. A seat held by the validating session itself is accepted.
func Validate(quantity int32, candidateSeats []uuid.UUID, snapshot []Seat, sessionID string) error {
	if int32(len(candidateSeats)) != quantity {
		return ErrCountMismatch
	}

	byID := make(map[uuid.UUID]Seat, len(snapshot))
	for _, s := range snapshot {
		byID[s.ID] = s
	}

	for _, seatID := range candidateSeats {
		seat, ok := byID[seatID]
		if !ok {
			return &UnavailableSeatError{SeatID: seatID}
		}
		switch seat.Status {
		case SeatAvailable:
		case SeatHeld:
			if seat.SessionID != sessionID {
				return &UnavailableSeatError{SeatID: seatID}
			}
		default:
			return &UnavailableSeatError{SeatID: seatID}
		}
	}

	return nil
}
