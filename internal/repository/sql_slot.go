package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/prodplan/internal/db"
)

// SQLSlotRepo implements SlotRepo on the slots table. It serves both the
// SQLite and the Postgres backends; dialect only changes placeholders.
type SQLSlotRepo struct {
	db      db.DBTX
	uow     db.UnitOfWork
	dialect db.Dialect
}

// NewSQLSlotRepo creates a new SQLSlotRepo.
func NewSQLSlotRepo(conn *sql.DB, dialect db.Dialect) *SQLSlotRepo {
	return &SQLSlotRepo{
		db:      conn,
		uow:     db.NewSQLUnitOfWork(conn),
		dialect: dialect,
	}
}

// NewSQLSlotRepoWithUoW creates a SQLSlotRepo whose writes run through uow.
func NewSQLSlotRepoWithUoW(conn db.DBTX, uow db.UnitOfWork, dialect db.Dialect) *SQLSlotRepo {
	return &SQLSlotRepo{db: conn, uow: uow, dialect: dialect}
}

func (r *SQLSlotRepo) Read(ctx context.Context, key string) ([]byte, error) {
	query := db.Rebind(r.dialect, `SELECT value FROM slots WHERE slot_key = ?`)
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return []byte(value), nil
}

// Revision returns how many times key has been replaced (0 when absent).
func (r *SQLSlotRepo) Revision(ctx context.Context, key string) (int64, error) {
	query := db.Rebind(r.dialect, `SELECT revision FROM slots WHERE slot_key = ?`)
	var rev int64
	err := r.db.QueryRowContext(ctx, query, key).Scan(&rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading slot revision %q: %w", key, err)
	}
	return rev, nil
}

func (r *SQLSlotRepo) Replace(ctx context.Context, key string, value []byte) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var rev int64
		err := tx.QueryRowContext(ctx, db.Rebind(r.dialect, `SELECT revision FROM slots WHERE slot_key = ?`), key).Scan(&rev)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("reading slot revision %q: %w", key, err)
		}

		query := db.Rebind(r.dialect, `INSERT INTO slots (slot_key, value, revision, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (slot_key) DO UPDATE SET
				value = excluded.value,
				revision = excluded.revision,
				updated_at = excluded.updated_at`)
		if _, err := tx.ExecContext(ctx, query, key, string(value), rev+1, nowUTC()); err != nil {
			return fmt.Errorf("replacing slot %q: %w", key, err)
		}
		return nil
	})
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
