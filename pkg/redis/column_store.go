package redis

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/ruleset/pkg/schema"
)

// DefaultKeyPrefix namespaces column lists in a shared database.
const DefaultKeyPrefix = "ruleset:columns:"

// Cmdable is the subset of redis.UniversalClient used by ColumnStore.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// ColumnStore keeps JSON encoded column lists in Redis. It implements
// schema.Store, so several processes can share one catalog lookup.
type ColumnStore struct {
	db            Cmdable
	prefix        string
	scanBatchSize int64
}

// NewColumnStore returns a store using the default key prefix.
func NewColumnStore(client Cmdable) *ColumnStore {
	return &ColumnStore{db: client, prefix: DefaultKeyPrefix, scanBatchSize: 1000}
}

// NewColumnStoreWithConfig returns a store using the prefix and scan batch
// size of cfg.
func NewColumnStoreWithConfig(client Cmdable, cfg Config) *ColumnStore {
	s := NewColumnStore(client)
	if cfg.KeyPrefix != "" {
		s.prefix = cfg.KeyPrefix
	}
	if cfg.ScanBatchSize > 0 {
		s.scanBatchSize = int64(cfg.ScanBatchSize)
	}
	return s
}

// Get reports false for missing keys.
func (s *ColumnStore) Get(ctx context.Context, table string) ([]schema.Column, bool, error) {
	val, err := s.db.Get(ctx, s.prefix+table).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStoreRead, err)
	}

	var cols []schema.Column
	if err := json.Unmarshal(val, &cols); err != nil {
		return nil, false, errors.Join(ErrStoreRead, err)
	}
	return cols, true, nil
}

// Set stores cols with expiration. Zero ttl means no expiration.
func (s *ColumnStore) Set(ctx context.Context, table string, cols []schema.Column, ttl time.Duration) error {
	if table == "" {
		return schema.ErrEmptyTable
	}
	val, err := json.Marshal(cols)
	if err != nil {
		return errors.Join(ErrStoreWrite, err)
	}
	if err := s.db.Set(ctx, s.prefix+table, val, ttl).Err(); err != nil {
		return errors.Join(ErrStoreWrite, err)
	}
	return nil
}

// Delete removes one table.
func (s *ColumnStore) Delete(ctx context.Context, table string) error {
	if err := s.db.Del(ctx, s.prefix+table).Err(); err != nil {
		return errors.Join(ErrStoreWrite, err)
	}
	return nil
}

// Purge removes every table under the store prefix, using SCAN so Redis is
// never blocked. It returns the number of keys removed.
func (s *ColumnStore) Purge(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.prefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return removed, errors.Join(ErrStoreWrite, err)
		}
		if len(batch) > 0 {
			n, err := s.db.Del(ctx, batch...).Result()
			if err != nil {
				return removed, errors.Join(ErrStoreWrite, err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
