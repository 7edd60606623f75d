package domain

import (
	"github.com/yungbote/missions-backend/internal/domain/science"
)

type Scientist = science.Scientist
type ScientistSummary = science.ScientistSummary
type ScientistDetail = science.ScientistDetail
type ScientistInput = science.ScientistInput
type ScientistPatch = science.ScientistPatch

type Planet = science.Planet
type PlanetView = science.PlanetView
type PlanetInput = science.PlanetInput

type Mission = science.Mission
type MissionView = science.MissionView
type MissionInput = science.MissionInput

type ValidationError = science.ValidationError
type ConstraintViolation = science.ConstraintViolation

var ErrNotFound = science.ErrNotFound

var (
	IsValidation = science.IsValidation
	IsConstraint = science.IsConstraint

	Summaries    = science.Summaries
	PlanetViews  = science.PlanetViews
	MissionViews = science.MissionViews
)

// Models lists every persisted entity in dependency order (parents before missions).
func Models() []interface{} {
	return []interface{}{
		&science.Scientist{},
		&science.Planet{},
		&science.Mission{},
	}
}
