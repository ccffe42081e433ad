// Package readmodel holds the flat read-side shapes repositories return to
// use cases for rows that have no domain entity of their own.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKeyRM mirrors one row of idempotency_keys. Status is
// "processing" while the original request runs and "completed" once an
// order id has been recorded for replay.
type IdempotencyKeyRM struct {
	Key           uuid.UUID
	Endpoint      string
	RequestHash   string
	Status        string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

// StaffRM is a staff account row used by login and role checks.
type StaffRM struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}
