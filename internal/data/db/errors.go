package db

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/domain/science"
)

// ClassifyError turns store-level integrity rejections into *science.ConstraintViolation.
// Any other error is returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if science.IsConstraint(err) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &science.ConstraintViolation{Constraint: "foreign_key", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &science.ConstraintViolation{Constraint: "unique", Err: err}
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &science.ConstraintViolation{Constraint: "check", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		name := pgErr.ConstraintName
		if name == "" {
			name = pgConstraintKind(pgErr.Code)
		}
		return &science.ConstraintViolation{Constraint: name, Err: err}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return &science.ConstraintViolation{Constraint: sqliteConstraintKind(liteErr.ExtendedCode), Err: err}
	}
	return err
}

func pgConstraintKind(code string) string {
	switch code {
	case pgerrcode.ForeignKeyViolation:
		return "foreign_key"
	case pgerrcode.NotNullViolation:
		return "not_null"
	case pgerrcode.UniqueViolation:
		return "unique"
	case pgerrcode.CheckViolation:
		return "check"
	default:
		return "integrity"
	}
}

func sqliteConstraintKind(code sqlite3.ErrNoExtended) string {
	switch code {
	case sqlite3.ErrConstraintForeignKey:
		return "foreign_key"
	case sqlite3.ErrConstraintNotNull:
		return "not_null"
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return "unique"
	case sqlite3.ErrConstraintCheck:
		return "check"
	default:
		return "integrity"
	}
}
