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

type PlanetRepo interface {
	Create(dbc dbctx.Context, row *types.Planet) (*types.Planet, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Planet, error)
	List(dbc dbctx.Context) ([]*types.Planet, error)
	Delete(dbc dbctx.Context, id uint) error
	ListScientists(dbc dbctx.Context, id uint) ([]*types.Scientist, error)
}

type planetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanetRepo(db *gorm.DB, baseLog *logger.Logger) PlanetRepo {
	return &planetRepo{db: db, log: baseLog.With("repo", "PlanetRepo")}
}

func (r *planetRepo) Create(dbc dbctx.Context, row *types.Planet) (*types.Planet, error) {
	if row == nil {
		return nil, fmt.Errorf("create planet: nil row")
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create planet: %w", db.ClassifyError(err))
	}
	return row, nil
}

func (r *planetRepo) GetByID(dbc dbctx.Context, id uint) (*types.Planet, error) {
	var row types.Planet
	err := dbc.DB(r.db).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("planet %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *planetRepo) List(dbc dbctx.Context) ([]*types.Planet, error) {
	out := []*types.Planet{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planetRepo) Delete(dbc dbctx.Context, id uint) error {
	res := dbc.DB(r.db).Delete(&types.Planet{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete planet %d: %w", id, db.ClassifyError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("planet %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// ListScientists returns the distinct scientists with a mission to the planet.
func (r *planetRepo) ListScientists(dbc dbctx.Context, id uint) ([]*types.Scientist, error) {
	sub := dbc.DB(r.db).Model(&types.Mission{}).Select("scientist_id").Where("planet_id = ?", id)
	out := []*types.Scientist{}
	if err := dbc.DB(r.db).Where("id IN (?)", sub).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
