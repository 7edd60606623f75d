package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/missions-backend/internal/http/handlers"
	httpMW "github.com/yungbote/missions-backend/internal/http/middleware"
	"github.com/yungbote/missions-backend/internal/http/response"
	"github.com/yungbote/missions-backend/internal/observability"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	ServiceName     string
	CORSOrigins     []string
	MaxRequestBytes int64

	// Metrics is nil when metrics are disabled.
	Metrics     *observability.Metrics
	MetricsPath string

	ScientistHandler *httpH.ScientistHandler
	PlanetHandler    *httpH.PlanetHandler
	MissionHandler   *httpH.MissionHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "missions"
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.BodyLimit(cfg.MaxRequestBytes))

	r.NoRoute(func(c *gin.Context) { response.RespondError(c, 404, "") })

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Metrics
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.Metrics.Handler()))
	}

	// Scientists
	if cfg.ScientistHandler != nil {
		r.GET("/scientists", cfg.ScientistHandler.List)
		r.POST("/scientists", cfg.ScientistHandler.Create)
		r.GET("/scientists/:id", cfg.ScientistHandler.Get)
		r.PATCH("/scientists/:id", cfg.ScientistHandler.Update)
		r.DELETE("/scientists/:id", cfg.ScientistHandler.Delete)
		r.GET("/scientists/:id/planets", cfg.ScientistHandler.ListPlanets)
	}

	// Planets
	if cfg.PlanetHandler != nil {
		r.GET("/planets", cfg.PlanetHandler.List)
		r.POST("/planets", cfg.PlanetHandler.Create)
		r.GET("/planets/:id", cfg.PlanetHandler.Get)
		r.DELETE("/planets/:id", cfg.PlanetHandler.Delete)
		r.GET("/planets/:id/scientists", cfg.PlanetHandler.ListScientists)
	}

	// Missions
	if cfg.MissionHandler != nil {
		r.GET("/missions", cfg.MissionHandler.List)
		r.POST("/missions", cfg.MissionHandler.Create)
		r.GET("/missions/:id", cfg.MissionHandler.Get)
		r.DELETE("/missions/:id", cfg.MissionHandler.Delete)
	}

	return r
}
