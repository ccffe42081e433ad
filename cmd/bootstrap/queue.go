package bootstrap

import (
	"context"

	"ticket-checkout/internal/infra/queue"
	"ticket-checkout/internal/pkg/config"
	"ticket-checkout/internal/usecase"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		fx.Annotate(
			NewQueuePublisher,
			fx.As(new(usecase.EventPublisher)),
		),
	),
)

func NewQueuePublisher(lc fx.Lifecycle, cfg config.Config) (*queue.Publisher, error) {
	publisher, cleanup, err := queue.Connect(cfg.Queue)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
