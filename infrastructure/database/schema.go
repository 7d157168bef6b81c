package database

import (
	"context"
	"database/sql"
	"fmt"
)

const CacheEntriesTable = "cache_entries"

var cacheEntriesSchema = map[Dialect]string{
	Postgres: `CREATE TABLE IF NOT EXISTS cache_entries (
		cache_key  TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		expires_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	SQLite: `CREATE TABLE IF NOT EXISTS cache_entries (
		cache_key  TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		expires_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
}

const cacheEntriesIndex = `CREATE INDEX IF NOT EXISTS cache_entries_expires_at_idx ON cache_entries (expires_at)`

// Migrate creates the tables the service needs in one transaction. It is
// idempotent.
func Migrate(ctx context.Context, conn Conn) error {
	ddl, ok := cacheEntriesSchema[conn.Dialect()]
	if !ok {
		return fmt.Errorf("database: no schema for dialect %q", conn.Dialect())
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("database: create %s: %w", CacheEntriesTable, err)
		}
		if _, err := tx.ExecContext(ctx, cacheEntriesIndex); err != nil {
			return fmt.Errorf("database: index %s: %w", CacheEntriesTable, err)
		}
		return nil
	})
}
