// Package seatstore adapts the seating collaborator's availability snapshot.
// Seat state lives in Redis because seat holds churn much faster than
// tier-level inventory: holds expire on their own TTL without any sweep.
package seatstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ticket-checkout/internal/domain/seating"
	"ticket-checkout/internal/pkg/errs"
)

var ErrSeatStoreUnavailable = errs.New("seat store unavailable")

type RedisSeatStore struct {
	client *redis.Client
}

func NewRedisSeatStore(client *redis.Client) *RedisSeatStore {
	return &RedisSeatStore{client: client}
}

func seatKey(sectionID, seatID uuid.UUID) string {
	return fmt.Sprintf("seat:%s:%s", sectionID, seatID)
}

func holdKey(sectionID, seatID uuid.UUID) string {
	return fmt.Sprintf("seathold:%s:%s", sectionID, seatID)
}

type seatRecord struct {
	Status string `json:"status"`
}

type holdRecord struct {
	SessionID string `json:"session_id"`
}

// Snapshot returns the live status of the requested seats. A missing seat
// key is reported as AVAILABLE only when the section genuinely has the seat;
// unknown seats are omitted so the gate rejects them.
func (s *RedisSeatStore) Snapshot(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) ([]seating.Seat, error) {
	seats := make([]seating.Seat, 0, len(seatIDs))

	for _, seatID := range seatIDs {
		raw, err := s.client.Get(ctx, seatKey(sectionID, seatID)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errs.Mark(err, ErrSeatStoreUnavailable)
		}

		var rec seatRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, errs.Wrap(err, "corrupt seat record")
		}

		seat := seating.Seat{ID: seatID, Status: seating.SeatStatus(rec.Status)}

		if seat.Status == seating.SeatHeld {
			hold, err := s.client.Get(ctx, holdKey(sectionID, seatID)).Result()
			switch {
			case err == redis.Nil:
				// Hold TTL lapsed but the status key lagged; treat as free.
				seat.Status = seating.SeatAvailable
			case err != nil:
				return nil, errs.Mark(err, ErrSeatStoreUnavailable)
			default:
				var h holdRecord
				if err := json.Unmarshal([]byte(hold), &h); err != nil {
					return nil, errs.Wrap(err, "corrupt seat hold record")
				}
				seat.SessionID = h.SessionID
			}
		}

		seats = append(seats, seat)
	}

	return seats, nil
}

// Hold soft-holds the seats for a session. SetNX per seat keeps the holds
// atomic at the key level; a seat already held by another session fails the
// whole set, and any holds taken so far are rolled back.
func (s *RedisSeatStore) Hold(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID, sessionID string, ttl time.Duration) error {
	payload, err := json.Marshal(holdRecord{SessionID: sessionID})
	if err != nil {
		return errs.Wrap(err, "failed to marshal seat hold")
	}

	taken := make([]uuid.UUID, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		ok, err := s.client.SetNX(ctx, holdKey(sectionID, seatID), payload, ttl).Result()
		if err != nil {
			s.release(ctx, sectionID, taken)
			return errs.Mark(err, ErrSeatStoreUnavailable)
		}
		if !ok {
			existing, getErr := s.client.Get(ctx, holdKey(sectionID, seatID)).Result()
			if getErr == nil {
				var h holdRecord
				if json.Unmarshal([]byte(existing), &h) == nil && h.SessionID == sessionID {
					// Re-hold by the same session refreshes the TTL.
					s.client.Expire(ctx, holdKey(sectionID, seatID), ttl)
					taken = append(taken, seatID)
					continue
				}
			}
			s.release(ctx, sectionID, taken)
			return &seating.UnavailableSeatError{SeatID: seatID}
		}
		taken = append(taken, seatID)

		status, _ := json.Marshal(seatRecord{Status: string(seating.SeatHeld)})
		s.client.Set(ctx, seatKey(sectionID, seatID), status, 0)
	}

	return nil
}

// MarkSold flips committed seats to SOLD and drops their holds.
func (s *RedisSeatStore) MarkSold(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) error {
	payload, err := json.Marshal(seatRecord{Status: string(seating.SeatSold)})
	if err != nil {
		return errs.Wrap(err, "failed to marshal seat record")
	}

	for _, seatID := range seatIDs {
		if err := s.client.Set(ctx, seatKey(sectionID, seatID), payload, 0).Err(); err != nil {
			return errs.Mark(err, ErrSeatStoreUnavailable)
		}
		s.client.Del(ctx, holdKey(sectionID, seatID))
	}
	return nil
}

// Release frees held seats, e.g. when the owning order expires before the
// holds' own TTL does.
func (s *RedisSeatStore) Release(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) error {
	s.release(ctx, sectionID, seatIDs)
	return nil
}

func (s *RedisSeatStore) release(ctx context.Context, sectionID uuid.UUID, seatIDs []uuid.UUID) {
	payload, _ := json.Marshal(seatRecord{Status: string(seating.SeatAvailable)})
	for _, seatID := range seatIDs {
		s.client.Del(ctx, holdKey(sectionID, seatID))
		s.client.Set(ctx, seatKey(sectionID, seatID), payload, 0)
	}
}
