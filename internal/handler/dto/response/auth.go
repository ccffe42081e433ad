package response

import (
	"github.com/google/uuid"

	"ticket-checkout/internal/usecase/readmodel"
)

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Staff       StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromStaffRM(rm *readmodel.StaffRM) StaffResponse {
	return StaffResponse{
		ID:    rm.ID,
		Email: rm.Email,
		Role:  rm.Role,
	}
}
