package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-planner/internal/handler/api"
	"travel-planner/internal/handler/middleware"
	"travel-planner/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	planHandler *api.PlanHandler,
	bookingHandler *api.BookingHandler,
	statusHandler *api.StatusHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, planHandler, bookingHandler, statusHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	planHandler *api.PlanHandler,
	bookingHandler *api.BookingHandler,
	statusHandler *api.StatusHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		travel := apiGroup.Group("/travel")
		{
			addRoutes(travel, []route{
				{Method: http.MethodPost, Path: "/plan", Handler: planHandler.Create},
				{Method: http.MethodGet, Path: "/plans", Handler: planHandler.List},
				{Method: http.MethodGet, Path: "/plan/:id", Handler: planHandler.Get},
				{Method: http.MethodDelete, Path: "/plan/:id", Handler: planHandler.Delete},
				{Method: http.MethodPost, Path: "/plan/:id/refresh", Handler: planHandler.Refresh},
				{Method: http.MethodGet, Path: "/plan/:id/itinerary", Handler: planHandler.Itinerary},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/modify", Handler: bookingHandler.Modify},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: bookingHandler.Pay},
			})
		}

		status := apiGroup.Group("/status")
		{
			addRoutes(status, []route{
				{Method: http.MethodGet, Path: "/booking/:id", Handler: statusHandler.BookingStatus},
				{Method: http.MethodGet, Path: "/metrics", Handler: statusHandler.Metrics},
				{Method: http.MethodGet, Path: "/health", Handler: statusHandler.Health},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
