package components

import (
	"travel-planner/internal/handler"
	"travel-planner/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPlanHandler,
		api.NewBookingHandler,
		api.NewStatusHandler,
	),
	fx.Invoke(handler.NewRouter),
)
