package bootstrap

import (
	"log/slog"

	"travel-planner/internal/llm"
	"travel-planner/internal/pkg/config"
	"travel-planner/internal/providers"
	"travel-planner/internal/search"
	"travel-planner/internal/usecase/commands"
	"travel-planner/internal/usecase/queries"

	"go.uber.org/fx"
)

var SearchModule = fx.Module("search",
	fx.Provide(
		// One aggregator instance backs both ports; its counters feed the
		// metrics endpoint.
		fx.Annotate(
			NewAggregator,
			fx.As(new(commands.OfferCollector)),
			fx.As(new(queries.SearchStatsSource)),
		),
		fx.Annotate(
			NewOptimizer,
			fx.As(new(commands.OfferSelector)),
		),
		fx.Annotate(
			NewAdvisor,
			fx.As(new(commands.RecommendationAdvisor)),
		),
	),
)

func NewAggregator(
	cfg config.Config,
	flights []providers.FlightProvider,
	hotels []providers.HotelProvider,
	fallback *providers.Fallback,
	logger *slog.Logger,
) *search.Aggregator {
	return search.NewAggregator(flights, hotels, fallback, cfg.Search.CollectTimeout, cfg.Search.MaxOffers, logger)
}

func NewOptimizer(cfg config.Config) *search.Optimizer {
	return search.NewOptimizer(cfg.Optimizer.HotelRatingWeight, cfg.Optimizer.FlightDurationWeight, cfg.Optimizer.RoomCapacity)
}

func NewAdvisor(generator llm.TextGenerator, logger *slog.Logger) *search.Advisor {
	return search.NewAdvisor(generator, logger)
}
