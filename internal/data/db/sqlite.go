package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteParams = "_foreign_keys=on&_busy_timeout=5000"

// SQLiteDSN turns a file path (or ":memory:") into a DSN with foreign keys enforced
// on every pooled connection.
func SQLiteDSN(path string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "" || path == ":memory:":
		return "file::memory:?cache=shared&" + sqliteParams
	case strings.HasPrefix(path, "file:"):
		if strings.Contains(path, "?") {
			return path + "&" + sqliteParams
		}
		return path + "?" + sqliteParams
	default:
		return path + "?" + sqliteParams
	}
}

func openSQLite(path string) (gorm.Dialector, error) {
	path = strings.TrimSpace(path)
	if path != "" && path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	return sqlite.Open(SQLiteDSN(path)), nil
}
