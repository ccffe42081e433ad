package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"ticket-checkout/internal/pkg/config"
	"ticket-checkout/internal/usecase"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs the reservation expiry sweep on a fixed interval for
// the life of the process. The sweep itself is race-safe against concurrent
// settlement, so overlap with request handling needs no coordination here.
func StartSweeper(lc fx.Lifecycle, expiryUseCase usecase.ExpiryUseCase, cfg config.CheckoutConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.SweepInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						expired, err := expiryUseCase.Sweep(ctx)
						if err != nil {
							slog.Warn("expiry sweep failed", "error", err)
							continue
						}
						if expired > 0 {
							slog.Info("expiry sweep released reservations", "count", expired)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
