package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/observability"
	"github.com/yungbote/missions-backend/internal/platform/logger"
	"github.com/yungbote/missions-backend/internal/services"
)

type Services struct {
	Scientist services.ScientistService
	Planet    services.PlanetService
	Mission   services.MissionService
}

func wireServices(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Scientist: services.NewScientistService(db, log, metrics, r.Scientist, r.Mission),
		Planet:    services.NewPlanetService(db, log, metrics, r.Planet, r.Mission),
		Mission:   services.NewMissionService(db, log, metrics, r.Mission),
	}
}
