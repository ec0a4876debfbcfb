package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-latex/internal/generate"
	"resume-latex/internal/generations"
	"resume-latex/internal/services/health"
	"resume-latex/internal/shared/config"
	"resume-latex/internal/shared/metrics"
	"resume-latex/internal/shared/server/middleware"
	"resume-latex/internal/shared/server/respond"
)

const rateLimitGroupGenerate = "GENERATE"

// RouterDeps holds handlers wired by bootstrap. GenerationsHandler may be nil
// when auditing is disabled.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	GenerateHandler    *generate.Handler
	GenerationsHandler *generations.Handler
	Limiter            *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.BodyLimit(deps.Config.MaxBodyBytes),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: deps.Limiter,
			GroupFor: func(c *gin.Context) string {
				switch c.FullPath() {
				case "/generate", "/api/v1/generate":
					return rateLimitGroupGenerate
				}
				return ""
			},
			DefaultGroup: "UNLIMITED",
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupGenerate: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, health.AuditDisabled)
	}
	api.GET("/health", func(c *gin.Context) {
		report := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})

	if deps.GenerateHandler != nil {
		deps.GenerateHandler.RegisterRoutes(r)
		deps.GenerateHandler.RegisterRoutes(api)
	}
	if deps.GenerationsHandler != nil {
		deps.GenerationsHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
