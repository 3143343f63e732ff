package bootstrap

import (
	"log/slog"

	"travel-planner/internal/pkg/config"
	"travel-planner/internal/providers"

	"go.uber.org/fx"
)

var ProvidersModule = fx.Module("providers",
	fx.Provide(
		NewFlightProviders,
		NewHotelProviders,
		providers.NewFallback,
	),
)

// NewFlightProviders builds one adapter per configured upstream. Adapters
// without credentials are skipped; the fallback generator covers an empty
// slice at search time.
func NewFlightProviders(cfg config.Config, logger *slog.Logger) []providers.FlightProvider {
	p := cfg.Providers
	var out []providers.FlightProvider
	if p.AmadeusAPIKey != "" && p.AmadeusAPISecret != "" {
		out = append(out, providers.NewAmadeusClient(p.AmadeusBaseURL, p.AmadeusAPIKey, p.AmadeusAPISecret, p.HTTPTimeout))
	}
	if p.SkyAirAPIKey != "" {
		out = append(out, providers.NewSkyAirClient(p.SkyAirBaseURL, p.SkyAirAPIKey, p.HTTPTimeout))
	}
	if len(out) == 0 {
		logger.Warn("no flight providers configured, searches will serve generated offers")
	}
	return out
}

func NewHotelProviders(cfg config.Config, logger *slog.Logger) []providers.HotelProvider {
	p := cfg.Providers
	var out []providers.HotelProvider
	if p.BookingAPIKey != "" {
		out = append(out, providers.NewBookingClient(p.BookingBaseURL, p.BookingAPIKey, p.HTTPTimeout))
	}
	if p.ExpediaAPIKey != "" {
		out = append(out, providers.NewExpediaClient(p.ExpediaBaseURL, p.ExpediaAPIKey, p.HTTPTimeout))
	}
	if len(out) == 0 {
		logger.Warn("no hotel providers configured, searches will serve generated offers")
	}
	return out
}
