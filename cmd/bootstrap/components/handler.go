package components

import (
	"venue-deals/internal/handler"
	"venue-deals/internal/handler/api"
	"venue-deals/internal/handler/middleware"
	"venue-deals/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDealHandler,
		api.NewEngagementHandler,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(deals *api.DealHandler, engagements *api.EngagementHandler) handler.Handlers {
			return handler.Handlers{Deals: deals, Engagements: engagements}
		},
	),
	fx.Invoke(handler.NewRouter),
)
