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

type MissionService interface {
	List(dbc dbctx.Context) ([]*types.Mission, error)
	Get(dbc dbctx.Context, id uint) (*types.Mission, error)
	Create(dbc dbctx.Context, in types.MissionInput) (*types.Mission, error)
	Delete(dbc dbctx.Context, id uint) error
}

type missionService struct {
	db          *gorm.DB
	log         *logger.Logger
	metrics     *observability.Metrics
	missionRepo repos.MissionRepo
}

func NewMissionService(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, missionRepo repos.MissionRepo) MissionService {
	return &missionService{
		db:          db,
		log:         log.With("service", "MissionService"),
		metrics:     metrics,
		missionRepo: missionRepo,
	}
}

func (s *missionService) List(dbc dbctx.Context) ([]*types.Mission, error) {
	rows, err := s.missionRepo.List(dbc)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	return rows, nil
}

func (s *missionService) Get(dbc dbctx.Context, id uint) (*types.Mission, error) {
	return s.missionRepo.GetByID(dbc, id)
}

// Create leaves referential checks to the store; dangling ids surface as a
// constraint violation and nothing is written.
func (s *missionService) Create(dbc dbctx.Context, in types.MissionInput) (out *types.Mission, err error) {
	dbc, span := startSpan(dbc, "MissionService.Create", 0)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("mission", "create", err)
	}()

	row, err := in.Build()
	if err != nil {
		return nil, err
	}
	err = runInTx(s.db, dbc, func(inner dbctx.Context) error {
		created, err := s.missionRepo.Create(inner, row)
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

func (s *missionService) Delete(dbc dbctx.Context, id uint) (err error) {
	dbc, span := startSpan(dbc, "MissionService.Delete", id)
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveMutation("mission", "delete", err)
	}()

	return runInTx(s.db, dbc, func(inner dbctx.Context) error {
		return s.missionRepo.Delete(inner, id)
	})
}
