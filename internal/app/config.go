package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/missions-backend/internal/data/db"
	"github.com/yungbote/missions-backend/internal/platform/envutil"
)

// Duration reads "5s" style strings or a bare number of seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "null" {
		d.Duration = 0
		return nil
	}
	if dd, err := time.ParseDuration(s); err == nil {
		d.Duration = dd
		return nil
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("line %d: duration must look like \"5s\" or a number of seconds", value.Line)
	}
	d.Duration = time.Duration(secs) * time.Second
	return nil
}

type HTTPConfig struct {
	Addr              string   `yaml:"addr"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
	MaxRequestBytes   int64    `yaml:"max_request_bytes"`
	CORSOrigins       []string `yaml:"cors_origins"`
}

type PostgresConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type DatabaseConfig struct {
	Driver       string         `yaml:"driver"`
	Postgres     PostgresConfig `yaml:"postgres"`
	SQLitePath   string         `yaml:"sqlite_path"`
	MaxOpenConns int            `yaml:"max_open_conns"`
	MaxIdleConns int            `yaml:"max_idle_conns"`
	SlowQuery    Duration       `yaml:"slow_query"`
	AutoMigrate  bool           `yaml:"auto_migrate"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Config struct {
	Env         string         `yaml:"env"`
	ServiceName string         `yaml:"service_name"`
	Version     string         `yaml:"version"`
	HTTP        HTTPConfig     `yaml:"http"`
	Database    DatabaseConfig `yaml:"database"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

func defaultConfig() Config {
	return Config{
		Env:         "development",
		ServiceName: "missions",
		HTTP: HTTPConfig{
			Addr:              ":5555",
			ReadHeaderTimeout: Duration{5 * time.Second},
			IdleTimeout:       Duration{2 * time.Minute},
			ShutdownTimeout:   Duration{15 * time.Second},
			MaxRequestBytes:   1 << 20,
		},
		Database: DatabaseConfig{
			Driver:      db.DriverSQLite,
			SQLitePath:  "app.db",
			Postgres:    PostgresConfig{Host: "localhost", Port: "5432", SSLMode: "disable"},
			SlowQuery:   Duration{time.Second},
			AutoMigrate: true,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// LoadConfig layers defaults, the optional YAML file and environment overrides,
// then validates the result.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := configPath(); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if uri := envutil.String("DB_URI", ""); uri != "" {
		dbCfg, err := db.ApplyURI(cfg.DBConfig(), uri)
		if err != nil {
			return Config{}, err
		}
		cfg.Database.Driver = dbCfg.Driver
		cfg.Database.SQLitePath = dbCfg.SQLitePath
		cfg.Database.Postgres.URL = dbCfg.Postgres.URL
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configPath() string {
	if p := envutil.String("MISSIONS_CONFIG_PATH", ""); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	p := filepath.Join(wd, "config", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("LOG_MODE", cfg.Env)
	cfg.Version = envutil.String("APP_VERSION", cfg.Version)

	cfg.HTTP.Addr = envutil.String("HTTP_ADDR", cfg.HTTP.Addr)
	if port := envutil.String("PORT", ""); port != "" && envutil.String("HTTP_ADDR", "") == "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.HTTP.ShutdownTimeout.Duration = envutil.Duration("HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout.Duration)
	cfg.HTTP.CORSOrigins = envutil.List("CORS_ORIGINS", cfg.HTTP.CORSOrigins)

	d := &cfg.Database
	d.Driver = envutil.String("DB_DRIVER", d.Driver)
	d.SQLitePath = envutil.String("SQLITE_PATH", d.SQLitePath)
	d.MaxOpenConns = envutil.Int("DB_MAX_OPEN_CONNS", d.MaxOpenConns)
	d.AutoMigrate = envutil.Bool("DB_AUTO_MIGRATE", d.AutoMigrate)
	d.Postgres.URL = envutil.String("POSTGRES_URL", d.Postgres.URL)
	d.Postgres.Host = envutil.String("POSTGRES_HOST", d.Postgres.Host)
	d.Postgres.Port = envutil.String("POSTGRES_PORT", d.Postgres.Port)
	d.Postgres.User = envutil.String("POSTGRES_USER", d.Postgres.User)
	d.Postgres.Password = envutil.String("POSTGRES_PASSWORD", d.Postgres.Password)
	d.Postgres.Name = envutil.String("POSTGRES_NAME", d.Postgres.Name)
	d.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", d.Postgres.SSLMode)

	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.Path = envutil.String("METRICS_PATH", cfg.Metrics.Path)
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if c.HTTP.ShutdownTimeout.Duration <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
	}
	switch strings.ToLower(strings.TrimSpace(c.Database.Driver)) {
	case db.DriverSQLite:
		if strings.TrimSpace(c.Database.SQLitePath) == "" {
			errs = append(errs, errors.New("database.sqlite_path is required for sqlite"))
		}
	case db.DriverPostgres:
		p := c.Database.Postgres
		if p.URL == "" && (p.Host == "" || p.Name == "" || p.User == "") {
			errs = append(errs, errors.New("database.postgres needs url or host, name and user"))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not one of sqlite, postgres", c.Database.Driver))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, errors.New("metrics.path must start with /"))
	}
	return errors.Join(errs...)
}

func (c Config) DBConfig() db.Config {
	p := c.Database.Postgres
	return db.Config{
		Driver: strings.ToLower(strings.TrimSpace(c.Database.Driver)),
		Postgres: db.PostgresConfig{
			URL:      p.URL,
			Host:     p.Host,
			Port:     p.Port,
			User:     p.User,
			Password: p.Password,
			Name:     p.Name,
			SSLMode:  p.SSLMode,
		},
		SQLitePath:    c.Database.SQLitePath,
		MaxOpenConns:  c.Database.MaxOpenConns,
		MaxIdleConns:  c.Database.MaxIdleConns,
		SlowThreshold: c.Database.SlowQuery.Duration,
	}
}
