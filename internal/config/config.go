package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrUnknownBackend is returned for a PRODPLAN_BACKEND outside Backends.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend selects where the plan collection is persisted.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendFile     Backend = "file"
	BackendRedis    Backend = "redis"
	BackendMemory   Backend = "memory"
)

// Backends lists the accepted backend names.
var Backends = []Backend{BackendSQLite, BackendPostgres, BackendFile, BackendRedis, BackendMemory}

// Config holds runtime settings for the prodplan binary.
type Config struct {
	Backend     Backend
	DBPath      string
	PostgresDSN string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	DataDir     string
	SlotKey     string
	ExportDir   string
	TimeZone    string
	LogFile     string // "-" logs to stderr, empty disables logging
	LogLevel    string
}

// DefaultConfig returns the settings used when no environment is set:
// a sqlite database under ~/.prodplan and local time.
func DefaultConfig() Config {
	home := defaultHome()
	return Config{
		Backend:   BackendSQLite,
		DBPath:    filepath.Join(home, "prodplan.db"),
		RedisAddr: "localhost:6379",
		DataDir:   filepath.Join(home, "data"),
		SlotKey:   "prod_planning_data",
		ExportDir: ".",
		LogLevel:  "info",
	}
}

func defaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".prodplan"
	}
	return filepath.Join(dir, ".prodplan")
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none)
// into the environment. Missing files are skipped; variables already set
// are left alone.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// LoadConfig reads PRODPLAN_* environment variables over the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PRODPLAN_BACKEND"); v != "" {
		cfg.Backend = Backend(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv("PRODPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PRODPLAN_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("PRODPLAN_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("PRODPLAN_REDIS_PASSWORD"); v != "" {
		cfg.RedisPass = v
	}
	if v := os.Getenv("PRODPLAN_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RedisDB = n
		}
	}
	if v := os.Getenv("PRODPLAN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PRODPLAN_SLOT_KEY"); v != "" {
		cfg.SlotKey = v
	}
	if v := os.Getenv("PRODPLAN_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("PRODPLAN_TZ"); v != "" {
		cfg.TimeZone = v
	}
	if v := os.Getenv("PRODPLAN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PRODPLAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// Validate rejects settings that cannot open a backend.
func (c Config) Validate() error {
	known := false
	for _, b := range Backends {
		if c.Backend == b {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%q: %w", c.Backend, ErrUnknownBackend)
	}
	if c.Backend == BackendPostgres && c.PostgresDSN == "" {
		return errors.New("PRODPLAN_POSTGRES_DSN is required for the postgres backend")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone; empty means the system local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid PRODPLAN_TZ %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid PRODPLAN_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
