package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/prodplan/internal/db"
	"github.com/alexanderramin/prodplan/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Storage is an opened persistence backend.
type Storage struct {
	Slot  repository.SlotRepo
	close func() error
}

// Close releases the backend's connections.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage connects the configured backend and returns its slot.
func OpenStorage(ctx context.Context, cfg Config) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return openSlot(ctx, cfg)
}

func openSlot(ctx context.Context, cfg Config) (*Storage, error) {
	switch cfg.Backend {
	case BackendSQLite:
		conn, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return sqlStorage(conn, db.DialectSQLite), nil

	case BackendPostgres:
		conn, err := db.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		return sqlStorage(conn, db.DialectPostgres), nil

	case BackendFile:
		return &Storage{Slot: repository.NewFileSlotRepo(cfg.DataDir)}, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
		}
		return &Storage{Slot: repository.NewRedisSlotRepo(client, "prodplan:"), close: client.Close}, nil

	default:
		return nil, fmt.Errorf("%q: %w", cfg.Backend, ErrUnknownBackend)
	}
}

func sqlStorage(conn *sql.DB, dialect db.Dialect) *Storage {
	return &Storage{
		Slot:  repository.NewSQLSlotRepo(conn, dialect),
		close: conn.Close,
	}
}
