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

type ScientistRepo interface {
	Create(dbc dbctx.Context, row *types.Scientist) (*types.Scientist, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Scientist, error)
	List(dbc dbctx.Context) ([]*types.Scientist, error)
	Save(dbc dbctx.Context, row *types.Scientist) error
	Delete(dbc dbctx.Context, id uint) error
	ListPlanets(dbc dbctx.Context, id uint) ([]*types.Planet, error)
	Count(dbc dbctx.Context) (int64, error)
}

type scientistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScientistRepo(db *gorm.DB, baseLog *logger.Logger) ScientistRepo {
	return &scientistRepo{db: db, log: baseLog.With("repo", "ScientistRepo")}
}

func (r *scientistRepo) Create(dbc dbctx.Context, row *types.Scientist) (*types.Scientist, error) {
	if row == nil {
		return nil, fmt.Errorf("create scientist: nil row")
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create scientist: %w", db.ClassifyError(err))
	}
	return row, nil
}

// GetByID loads the scientist with its missions ordered by id.
func (r *scientistRepo) GetByID(dbc dbctx.Context, id uint) (*types.Scientist, error) {
	var row types.Scientist
	err := dbc.DB(r.db).
		Preload("Missions", func(tx *gorm.DB) *gorm.DB { return tx.Order("missions.id ASC") }).
		First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("scientist %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *scientistRepo) List(dbc dbctx.Context) ([]*types.Scientist, error) {
	out := []*types.Scientist{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save writes the mutable columns only.
func (r *scientistRepo) Save(dbc dbctx.Context, row *types.Scientist) error {
	if row == nil || row.ID == 0 {
		return fmt.Errorf("save scientist: missing id")
	}
	res := dbc.DB(r.db).
		Model(&types.Scientist{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":           row.Name,
			"field_of_study": row.FieldOfStudy,
		})
	if res.Error != nil {
		return fmt.Errorf("save scientist %d: %w", row.ID, db.ClassifyError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("scientist %d: %w", row.ID, types.ErrNotFound)
	}
	return nil
}

func (r *scientistRepo) Delete(dbc dbctx.Context, id uint) error {
	res := dbc.DB(r.db).Delete(&types.Scientist{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete scientist %d: %w", id, db.ClassifyError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("scientist %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// ListPlanets returns the distinct planets reached through the scientist's missions.
func (r *scientistRepo) ListPlanets(dbc dbctx.Context, id uint) ([]*types.Planet, error) {
	sub := dbc.DB(r.db).Model(&types.Mission{}).Select("planet_id").Where("scientist_id = ?", id)
	out := []*types.Planet{}
	if err := dbc.DB(r.db).Where("id IN (?)", sub).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scientistRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&types.Scientist{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
