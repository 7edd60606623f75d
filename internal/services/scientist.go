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

type ScientistService interface {
	List(dbc dbctx.Context) ([]*types.Scientist, error)
	Get(dbc dbctx.Context, id uint) (*types.Scientist, error)
	Create(dbc dbctx.Context, in types.ScientistInput) (*types.Scientist, error)
	Update(dbc dbctx.Context, id uint, patch types.ScientistPatch) (*types.Scientist, error)
	Delete(dbc dbctx.Context, id uint) error
	ListPlanets(dbc dbctx.Context, id uint) ([]*types.Planet, error)
}

type scientistService struct {
	db            *gorm.DB
	log           *logger.Logger
	metrics       *observability.Metrics
	scientistRepo repos.ScientistRepo
	missionRepo   repos.MissionRepo
}

func NewScientistService(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, scientistRepo repos.ScientistRepo, missionRepo repos.MissionRepo) ScientistService {
	return &scientistService{
		db:            db,
		log:           log.With("service", "ScientistService"),
		metrics:       metrics,
		scientistRepo: scientistRepo,
		missionRepo:   missionRepo,
	}
}

func (s *scientistService) List(dbc dbctx.Context) ([]*types.Scientist, error) {
	rows, err := s.scientistRepo.List(dbc)
	if err != nil {
		return nil, fmt.Errorf("list scientists: %w", err)
	}
	return rows, nil
}

func (s *scientistService) Get(dbc dbctx.Context, id uint) (*types.Scientist, error) {
	return s.scientistRepo.GetByID(dbc, id)
}

func (s *scientistService) Create(dbc dbctx.Context, in types.ScientistInput) (out *types.Scientist, err error) {
	dbc, span := startSpan(dbc, "ScientistService.Create", 0)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("scientist", "create", err)
	}()

	row, err := in.Build()
	if err != nil {
		return nil, err
	}
	err = runInTx(s.db, dbc, func(inner dbctx.Context) error {
		created, err := s.scientistRepo.Create(inner, row)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Scientist created", "scientist_id", out.ID)
	return out, nil
}

// Update applies every present patch field or none of them.
func (s *scientistService) Update(dbc dbctx.Context, id uint, patch types.ScientistPatch) (out *types.Scientist, err error) {
	dbc, span := startSpan(dbc, "ScientistService.Update", id)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("scientist", "update", err)
	}()

	err = runInTx(s.db, dbc, func(inner dbctx.Context) error {
		row, err := s.scientistRepo.GetByID(inner, id)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			out = row
			return nil
		}
		if err := patch.Apply(row); err != nil {
			return err
		}
		if err := s.scientistRepo.Save(inner, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the scientist and its missions in one transaction.
func (s *scientistService) Delete(dbc dbctx.Context, id uint) (err error) {
	dbc, span := startSpan(dbc, "ScientistService.Delete", id)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("scientist", "delete", err)
	}()

	var removed int64
	err = runInTx(s.db, dbc, func(inner dbctx.Context) error {
		n, err := s.missionRepo.DeleteByScientistID(inner, id)
		if err != nil {
			return err
		}
		removed = n
		return s.scientistRepo.Delete(inner, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("Scientist deleted", "scientist_id", id, "missions_removed", removed)
	return nil
}

func (s *scientistService) ListPlanets(dbc dbctx.Context, id uint) ([]*types.Planet, error) {
	var out []*types.Planet
	err := runInTx(s.db, dbc, func(inner dbctx.Context) error {
		if _, err := s.scientistRepo.GetByID(inner, id); err != nil {
			return err
		}
		rows, err := s.scientistRepo.ListPlanets(inner, id)
		if err != nil {
			return fmt.Errorf("list planets of scientist %d: %w", id, err)
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
