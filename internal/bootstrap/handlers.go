package bootstrap

import (
	"log/slog"
	"os"

	"github.com/eleven-am/voice-confidence/internal/gateway"
	"github.com/eleven-am/voice-confidence/internal/health"
	"github.com/eleven-am/voice-confidence/internal/practice"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvidePracticeManager(cfg *Config, logger *slog.Logger) *practice.Manager {
	return practice.NewManager(cfg.AnalysisConfig(), logger)
}

func ProvideAnalysisHandler(manager *practice.Manager, logger *slog.Logger) *gateway.Handler {
	return gateway.NewHandler(manager, logger)
}

func ProvideHealthHandler(manager *practice.Manager, cfg *Config) *health.Handler {
	return health.NewHandler(manager, cfg.Version)
}

type HandlerParams struct {
	fx.In

	AnalysisHandler *gateway.Handler
	HealthHandler   *health.Handler
}

func metricsMiddleware(h *health.Handler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h.IncrementRequests()
			h.IncrementConnections()
			defer h.DecrementConnections()
			return next(c)
		}
	}
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	e.Use(metricsMiddleware(params.HealthHandler))

	api := e.Group("/v1")

	params.AnalysisHandler.RegisterRoutes(api.Group("/analysis"))
	params.HealthHandler.RegisterRoutes(e)
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvidePracticeManager,
		ProvideAnalysisHandler,
		ProvideHealthHandler,
	),
	fx.Invoke(RegisterRoutes),
)
