package bootstrap

import (
	"travel-planner/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	ProvidersModule,
	LLMModule,
	SearchModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
