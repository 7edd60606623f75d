package science

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/missions-backend/internal/data/db"
	types "github.com/yungbote/missions-backend/internal/domain"
	"github.com/yungbote/missions-backend/internal/platform/dbctx"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

type MissionRepo interface {
	Create(dbc dbctx.Context, row *types.Mission) (*types.Mission, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Mission, error)
	List(dbc dbctx.Context) ([]*types.Mission, error)
	ListByScientistIDs(dbc dbctx.Context, scientistIDs []uint) ([]*types.Mission, error)
	DeleteByScientistID(dbc dbctx.Context, scientistID uint) (int64, error)
	DeleteByPlanetID(dbc dbctx.Context, planetID uint) (int64, error)
	Delete(dbc dbctx.Context, id uint) error
	Count(dbc dbctx.Context) (int64, error)
}

type missionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMissionRepo(db *gorm.DB, baseLog *logger.Logger) MissionRepo {
	return &missionRepo{db: db, log: baseLog.With("repo", "MissionRepo")}
}

// Create relies on the foreign keys to reject ids that do not exist.
func (r *missionRepo) Create(dbc dbctx.Context, row *types.Mission) (*types.Mission, error) {
	if row == nil {
		return nil, fmt.Errorf("create mission: nil row")
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create mission: %w", db.ClassifyError(err))
	}
	return row, nil
}

func (r *missionRepo) GetByID(dbc dbctx.Context, id uint) (*types.Mission, error) {
	var row types.Mission
	err := dbc.DB(r.db).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("mission %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *missionRepo) List(dbc dbctx.Context) ([]*types.Mission, error) {
	out := []*types.Mission{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *missionRepo) ListByScientistIDs(dbc dbctx.Context, scientistIDs []uint) ([]*types.Mission, error) {
	out := []*types.Mission{}
	if len(scientistIDs) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("scientist_id IN ?", scientistIDs).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *missionRepo) DeleteByScientistID(dbc dbctx.Context, scientistID uint) (int64, error) {
	res := dbc.DB(r.db).Where("scientist_id = ?", scientistID).Delete(&types.Mission{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete missions of scientist %d: %w", scientistID, db.ClassifyError(res.Error))
	}
	return res.RowsAffected, nil
}

func (r *missionRepo) DeleteByPlanetID(dbc dbctx.Context, planetID uint) (int64, error) {
	res := dbc.DB(r.db).Where("planet_id = ?", planetID).Delete(&types.Mission{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete missions of planet %d: %w", planetID, db.ClassifyError(res.Error))
	}
	return res.RowsAffected, nil
}

func (r *missionRepo) Delete(dbc dbctx.Context, id uint) error {
	res := dbc.DB(r.db).Delete(&types.Mission{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete mission %d: %w", id, db.ClassifyError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mission %d: %w", id, types.ErrNotFound)
	}
	return nil
}

func (r *missionRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&types.Mission{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
