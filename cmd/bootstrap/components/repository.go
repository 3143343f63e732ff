package components

import (
	"travel-planner/internal/infra/repository"
	"travel-planner/internal/usecase/commands"
	"travel-planner/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewPlanRepository,
			fx.As(new(commands.PlanRepository)),
			fx.As(new(queries.PlanReadStore)),
			fx.As(new(queries.PlanCounter)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingCounter)),
		),
		fx.Annotate(
			NewPinger,
			fx.As(new(queries.Pinger)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

func NewPinger(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
