package db

import (
	"fmt"
	"strings"
)

// ApplyURI overlays a SQLAlchemy-style database URI onto cfg:
// "sqlite:///relative.db", "sqlite:////abs/path.db", "sqlite://" (memory) or a postgres URL.
func ApplyURI(cfg Config, uri string) (Config, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return cfg, nil
	}
	switch {
	case strings.HasPrefix(uri, "sqlite://"):
		cfg.Driver = DriverSQLite
		path := strings.TrimPrefix(uri, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			path = ":memory:"
		}
		cfg.SQLitePath = path
		return cfg, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		cfg.Driver = DriverPostgres
		cfg.Postgres.URL = uri
		return cfg, nil
	default:
		return cfg, fmt.Errorf("unsupported database uri scheme in %q", redactURI(uri))
	}
}

func redactURI(uri string) string {
	if i := strings.Index(uri, "://"); i >= 0 {
		return uri[:i+3] + "..."
	}
	return "..."
}
