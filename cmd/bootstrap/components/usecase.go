package components

import (
	"log/slog"

	"travel-planner/internal/pkg/clock"
	"travel-planner/internal/pkg/config"
	"travel-planner/internal/providers"
	"travel-planner/internal/usecase/commands"
	"travel-planner/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		providers.NewConfirmationService,
		fx.As(new(commands.Confirmer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPlanUseCase,
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPlanQueries,
		queries.NewBookingQueries,
		queries.NewStatusQueries,
	),
)

func NewBookingCommands(
	bookings commands.BookingRepository,
	plans commands.PlanRepository,
	confirmer commands.Confirmer,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) commands.BookingCommands {
	return commands.NewBookingUseCase(bookings, plans, confirmer, cfg.Optimizer.RoomCapacity, clk, logger)
}
