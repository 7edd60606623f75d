package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/missions-backend/internal/domain"
)

// AutoMigrateAll creates the scientists, planets and missions tables together with the
// cascading foreign keys declared on the parent models.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// ForeignKeysEnabled reports whether the connection enforces foreign keys.
// Postgres always does; SQLite only with the pragma on.
func ForeignKeysEnabled(db *gorm.DB) (bool, error) {
	if db.Dialector.Name() != DriverSQLite {
		return true, nil
	}
	var on int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&on).Error; err != nil {
		return false, fmt.Errorf("read foreign_keys pragma: %w", err)
	}
	return on == 1, nil
}
