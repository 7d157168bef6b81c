package cache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jonboulle/clockwork"

	"github.com/vfg2006/econ-pulse-api/infrastructure/database"
)

const upsertSuffix = "ON CONFLICT (cache_key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at, updated_at = excluded.updated_at"

// SQLStore keeps entries in the cache_entries table. Expiry is stored as
// unix nanoseconds so both dialects compare it the same way.
type SQLStore struct {
	conn  database.Conn
	clock clockwork.Clock
}

func NewSQLStore(ctx context.Context, conn database.Conn, clock clockwork.Clock) (*SQLStore, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	if err := database.Migrate(ctx, conn); err != nil {
		return nil, err
	}

	return &SQLStore{conn: conn, clock: clock}, nil
}

func (s *SQLStore) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(s.conn.Placeholder())
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder().
		Select("value", "expires_at").
		From(database.CacheEntriesTable).
		Where(squirrel.Eq{"cache_key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	var expiresAt int64
	err = s.conn.QueryRow(ctx, query, args...).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	if s.clock.Now().UnixNano() >= expiresAt {
		_ = s.Delete(ctx, key)
		return nil, ErrCacheMiss
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.clock.Now()

	query, args, err := s.builder().
		Insert(database.CacheEntriesTable).
		Columns("cache_key", "value", "expires_at", "updated_at").
		Values(key, value, now.Add(ttl).UnixNano(), now.UnixNano()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, query, args...)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := s.builder().
		Delete(database.CacheEntriesTable).
		Where(squirrel.Eq{"cache_key": keys}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, query, args...)
	return err
}

// PurgeExpired removes every expired row and reports how many were dropped.
func (s *SQLStore) PurgeExpired(ctx context.Context) (int64, error) {
	query, args, err := s.builder().
		Delete(database.CacheEntriesTable).
		Where(squirrel.LtOrEq{"expires_at": s.clock.Now().UnixNano()}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}
