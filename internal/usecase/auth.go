package usecase

import (
	"context"
	"errors"

	"ticket-checkout/internal/pkg/jwt"
	"ticket-checkout/internal/pkg/password"
	"ticket-checkout/internal/usecase/readmodel"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.StaffRM, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *readmodel.StaffRM, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a staff account. An unknown email and a wrong
// password return the same error so the endpoint cannot be used to probe
// which accounts exist.
func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *readmodel.StaffRM, error) {
	staff, err := a.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(staff.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(staff.ID, staff.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, staff, nil
}
