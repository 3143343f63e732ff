package bootstrap

import (
	"context"
	"log/slog"

	"travel-planner/internal/llm"
	"travel-planner/internal/pkg/config"

	"go.uber.org/fx"
)

var LLMModule = fx.Module("llm",
	fx.Provide(
		NewTextGenerator,
	),
)

// NewTextGenerator returns nil when no API key is configured; the advisor
// treats a nil generator as "no generated tip".
func NewTextGenerator(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (llm.TextGenerator, error) {
	if cfg.LLM.GeminiAPIKey == "" {
		logger.Info("gemini api key not set, skipping generated travel tips")
		return nil, nil
	}

	client, err := llm.NewGeminiClient(context.Background(), cfg.LLM.GeminiAPIKey, cfg.LLM.Model)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
