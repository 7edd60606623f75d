package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/data/repos"
	types "github.com/yungbote/missions-backend/internal/domain"
	"github.com/yungbote/missions-backend/internal/observability"
	"github.com/yungbote/missions-backend/internal/platform/dbctx"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

type PlanetService interface {
	List(dbc dbctx.Context) ([]*types.Planet, error)
	Get(dbc dbctx.Context, id uint) (*types.Planet, error)
	Create(dbc dbctx.Context, in types.PlanetInput) (*types.Planet, error)
	Delete(dbc dbctx.Context, id uint) error
	ListScientists(dbc dbctx.Context, id uint) ([]*types.Scientist, error)
}

type planetService struct {
	db          *gorm.DB
	log         *logger.Logger
	metrics     *observability.Metrics
	planetRepo  repos.PlanetRepo
	missionRepo repos.MissionRepo
}

func NewPlanetService(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, planetRepo repos.PlanetRepo, missionRepo repos.MissionRepo) PlanetService {
	return &planetService{
		db:          db,
		log:         log.With("service", "PlanetService"),
		metrics:     metrics,
		planetRepo:  planetRepo,
		missionRepo: missionRepo,
	}
}

func (s *planetService) List(dbc dbctx.Context) ([]*types.Planet, error) {
	rows, err := s.planetRepo.List(dbc)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return rows, nil
}

func (s *planetService) Get(dbc dbctx.Context, id uint) (*types.Planet, error) {
	return s.planetRepo.GetByID(dbc, id)
}

func (s *planetService) Create(dbc dbctx.Context, in types.PlanetInput) (out *types.Planet, err error) {
	dbc, span := startSpan(dbc, "PlanetService.Create", 0)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("planet", "create", err)
	}()

	row, err := in.Build()
	if err != nil {
		return nil, err
	}
	err = runInTx(s.db, dbc, func(inner dbctx.Context) error {
		created, err := s.planetRepo.Create(inner, row)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the planet and its missions in one transaction.
func (s *planetService) Delete(dbc dbctx.Context, id uint) (err error) {
	dbc, span := startSpan(dbc, "PlanetService.Delete", id)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("planet", "delete", err)
	}()

	var removed int64
	err = runInTx(s.db, dbc, func(inner dbctx.Context) error {
		n, err := s.missionRepo.DeleteByPlanetID(inner, id)
		if err != nil {
			return err
		}
		removed = n
		return s.planetRepo.Delete(inner, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("Planet deleted", "planet_id", id, "missions_removed", removed)
	return nil
}

func (s *planetService) ListScientists(dbc dbctx.Context, id uint) ([]*types.Scientist, error) {
	var out []*types.Scientist
	err := runInTx(s.db, dbc, func(inner dbctx.Context) error {
		if _, err := s.planetRepo.GetByID(inner, id); err != nil {
			return err
		}
		rows, err := s.planetRepo.ListScientists(inner, id)
		if err != nil {
			return fmt.Errorf("list scientists of planet %d: %w", id, err)
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
