package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, weights, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Providers ProvidersConfig
	Search    SearchConfig
	Optimizer OptimizerConfig
	LLM       LLMConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// ProvidersConfig holds upstream credentials. Adapters receive these values at
// construction; nothing reads them from ambient globals.
type ProvidersConfig struct {
	AmadeusBaseURL   string        `envconfig:"AMADEUS_BASE_URL" default:"https://test.api.amadeus.com"`
	AmadeusAPIKey    string        `envconfig:"AMADEUS_API_KEY" default:""`
	AmadeusAPISecret string        `envconfig:"AMADEUS_API_SECRET" default:""`
	SkyAirBaseURL    string        `envconfig:"SKYAIR_BASE_URL" default:"https://partners.api.skyscanner.net"`
	SkyAirAPIKey     string        `envconfig:"SKYAIR_API_KEY" default:""`
	BookingBaseURL   string        `envconfig:"BOOKING_BASE_URL" default:"https://distribution-xml.booking.com"`
	BookingAPIKey    string        `envconfig:"BOOKING_API_KEY" default:""`
	ExpediaBaseURL   string        `envconfig:"EXPEDIA_BASE_URL" default:"https://api.expedia.com"`
	ExpediaAPIKey    string        `envconfig:"EXPEDIA_API_KEY" default:""`
	HTTPTimeout      time.Duration `envconfig:"PROVIDER_HTTP_TIMEOUT" default:"30s"`
}

type SearchConfig struct {
	// One timeout window per category; adapters still running at the deadline
	// count as failed for merge purposes.
	CollectTimeout time.Duration `envconfig:"SEARCH_COLLECT_TIMEOUT" default:"8s"`
	MaxOffers      int           `envconfig:"SEARCH_MAX_OFFERS" default:"10"`
}

type OptimizerConfig struct {
	// HotelRatingWeight must stay >= FlightDurationWeight: lodging quality
	// matters more over a multi-day stay than shaving flight minutes.
	HotelRatingWeight    float64 `envconfig:"OPTIMIZER_HOTEL_RATING_WEIGHT" default:"0.7"`
	FlightDurationWeight float64 `envconfig:"OPTIMIZER_FLIGHT_DURATION_WEIGHT" default:"0.3"`
	RoomCapacity         int     `envconfig:"OPTIMIZER_ROOM_CAPACITY" default:"2"`
}

type LLMConfig struct {
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" default:""`
	Model        string `envconfig:"GEMINI_MODEL" default:"gemini-pro"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Optimizer.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c OptimizerConfig) validate() error {
	if c.HotelRatingWeight < c.FlightDurationWeight {
		return fmt.Errorf("hotel rating weight (%v) must be >= flight duration weight (%v)",
			c.HotelRatingWeight, c.FlightDurationWeight)
	}
	if c.RoomCapacity < 1 {
		return fmt.Errorf("room capacity must be at least 1, got %d", c.RoomCapacity)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Search: SearchConfig{
			CollectTimeout: 2 * time.Second,
			MaxOffers:      10,
		},
		Optimizer: OptimizerConfig{
			HotelRatingWeight:    0.7,
			FlightDurationWeight: 0.3,
			RoomCapacity:         2,
		},
	}
}
