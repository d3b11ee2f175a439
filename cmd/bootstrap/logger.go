package bootstrap

import (
	"log/slog"

	"venue-deals/internal/handler/middleware"
	"venue-deals/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		middleware.NewLogger,
		NewSlogLogger,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
