package app

import (
	"github.com/yungbote/missions-backend/internal/data/db"
	"github.com/yungbote/missions-backend/internal/http"
	httpH "github.com/yungbote/missions-backend/internal/http/handlers"
	"github.com/yungbote/missions-backend/internal/observability"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Scientist *httpH.ScientistHandler
	Planet    *httpH.PlanetHandler
	Mission   *httpH.MissionHandler
}

func wireHandlers(log *logger.Logger, services Services, dbService *db.Service) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(dbService),
		Scientist: httpH.NewScientistHandler(log, services.Scientist),
		Planet:    httpH.NewPlanetHandler(log, services.Planet),
		Mission:   httpH.NewMissionHandler(log, services.Mission),
	}
}

func wireServer(cfg Config, log *logger.Logger, metrics *observability.Metrics, handlers Handlers) *http.Server {
	return http.NewServer(
		http.ServerConfig{
			Addr:              cfg.HTTP.Addr,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout.Duration,
			IdleTimeout:       cfg.HTTP.IdleTimeout.Duration,
		},
		http.RouterConfig{
			Log:              log,
			ServiceName:      cfg.ServiceName,
			CORSOrigins:      cfg.HTTP.CORSOrigins,
			MaxRequestBytes:  cfg.HTTP.MaxRequestBytes,
			Metrics:          metrics,
			MetricsPath:      cfg.Metrics.Path,
			HealthHandler:    handlers.Health,
			ScientistHandler: handlers.Scientist,
			PlanetHandler:    handlers.Planet,
			MissionHandler:   handlers.Mission,
		},
	)
}
