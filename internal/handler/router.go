package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-deals/internal/handler/api"
	"venue-deals/internal/handler/middleware"
	"venue-deals/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Deals       *api.DealHandler
	Engagements *api.EngagementHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rateLimiter *middleware.RateLimiter, h Handlers) error {
	// Source identity is the client IP, so only configured proxies may set it.
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, rateLimiter, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, rateLimiter *middleware.RateLimiter, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var recordMw []gin.HandlerFunc
	if cfg.RateLimit.Enabled && rateLimiter != nil {
		recordMw = append(recordMw, rateLimiter.Middleware())
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/venues"), []route{
			{Method: http.MethodGet, Path: "/:id/deals/active", Handler: h.Deals.ActiveForVenue},
		})

		addRoutes(apiGroup.Group("/deals"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Deals.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Deals.Get},
			{Method: http.MethodPatch, Path: "/:id/activation", Handler: h.Deals.SetActivation},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Deals.Delete},
		})

		addRoutes(apiGroup.Group("/engagements"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Engagements.Record, Mw: recordMw},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Engagements.Stats},
		})
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
