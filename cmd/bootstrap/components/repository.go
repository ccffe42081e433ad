package components

import (
	"ticket-checkout/internal/infra/db"
	repo_impl "ticket-checkout/internal/infra/repository"
	"ticket-checkout/internal/infra/seatstore"
	"ticket-checkout/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(usecase.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
			fx.As(new(usecase.DiscountRepositoryReader)),
		),
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(usecase.InventoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(usecase.IdempotencyRepository)),
		),
		fx.Annotate(
			repo_impl.NewWaitlistRepository,
			fx.As(new(usecase.WaitlistRepository)),
		),
		fx.Annotate(
			repo_impl.NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
		fx.Annotate(
			seatstore.NewRedisSeatStore,
			fx.As(new(usecase.SeatStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
