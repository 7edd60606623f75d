package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/data/repos/science"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

type ScientistRepo = science.ScientistRepo
type PlanetRepo = science.PlanetRepo
type MissionRepo = science.MissionRepo

func NewScientistRepo(db *gorm.DB, baseLog *logger.Logger) ScientistRepo {
	return science.NewScientistRepo(db, baseLog)
}
func NewPlanetRepo(db *gorm.DB, baseLog *logger.Logger) PlanetRepo {
	return science.NewPlanetRepo(db, baseLog)
}
func NewMissionRepo(db *gorm.DB, baseLog *logger.Logger) MissionRepo {
	return science.NewMissionRepo(db, baseLog)
}
