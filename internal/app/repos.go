package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/data/repos"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

type Repos struct {
	Scientist repos.ScientistRepo
	Planet    repos.PlanetRepo
	Mission   repos.MissionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Scientist: repos.NewScientistRepo(db, log),
		Planet:    repos.NewPlanetRepo(db, log),
		Mission:   repos.NewMissionRepo(db, log),
	}
}
