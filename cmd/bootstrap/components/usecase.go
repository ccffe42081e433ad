package components

import (
	"ticket-checkout/internal/pkg/clock"
	"ticket-checkout/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCheckoutUseCase,
		usecase.NewOrderUseCase,
		usecase.NewExpiryUseCase,
		usecase.NewAuthUseCase,
	),
)
