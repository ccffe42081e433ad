package repository

import (
	"context"

	"ticket-checkout/internal/infra"
	"ticket-checkout/internal/infra/db"
	"ticket-checkout/internal/usecase/readmodel"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*readmodel.StaffRM, error) {
	var staff readmodel.StaffRM
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role
		FROM staff_users
		WHERE email = $1`,
		email,
	).Scan(&staff.ID, &staff.Email, &staff.PasswordHash, &staff.Role)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("staff user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff user", err)
	}
	return &staff, nil
}
