package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Migrate runs all schema migrations. Every statement is written in the
// common subset of SQLite and Postgres and is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS slots (
		slot_key   TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		revision   INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	)`,
}

// Rebind rewrites "?" placeholders into the form the dialect expects.
// SQLite queries are returned unchanged; Postgres gets $1, $2, ...
func Rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
