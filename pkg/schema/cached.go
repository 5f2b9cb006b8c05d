package schema

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/ruleset/pkg/cache"
	"github.com/dmitrymomot/ruleset/pkg/logger"
)

// Store is a shared, remote column cache.
type Store interface {
	Get(ctx context.Context, table string) ([]Column, bool, error)
	Set(ctx context.Context, table string, cols []Column, ttl time.Duration) error
}

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// CacheOption configures a CachedProvider.
type CacheOption func(*cachedConfig)

type cachedConfig struct {
	size   int
	ttl    time.Duration
	store  Store
	logger *slog.Logger
}

// WithCacheSize sets the in-process capacity in tables.
func WithCacheSize(n int) CacheOption {
	return func(c *cachedConfig) {
		if n > 0 {
			c.size = n
		}
	}
}

// WithCacheTTL sets how long column lists stay cached, locally and remotely.
func WithCacheTTL(d time.Duration) CacheOption {
	return func(c *cachedConfig) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithStore adds a shared second-level cache.
func WithStore(s Store) CacheOption {
	return func(c *cachedConfig) { c.store = s }
}

// WithCacheLogger sets the logger used to report store failures.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *cachedConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// CachedProvider memoizes another provider. Store failures are logged and
// fall through to the wrapped provider.
type CachedProvider struct {
	next   Provider
	local  *cache.LRU[string, []Column]
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedProvider wraps next with caching.
func NewCachedProvider(next Provider, opts ...CacheOption) *CachedProvider {
	cfg := cachedConfig{
		size:   DefaultCacheSize,
		ttl:    DefaultCacheTTL,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &CachedProvider{
		next:   next,
		local:  cache.NewLRU(cfg.size, cache.WithTTL[string, []Column](cfg.ttl)),
		store:  cfg.store,
		ttl:    cfg.ttl,
		logger: cfg.logger,
	}
}

func (p *CachedProvider) Columns(ctx context.Context, table string) ([]Column, error) {
	if table == "" {
		return nil, ErrEmptyTable
	}
	if cols, ok := p.local.Get(table); ok {
		return slices.Clone(cols), nil
	}

	if p.store != nil {
		cols, ok, err := p.store.Get(ctx, table)
		if err != nil {
			p.logger.WarnContext(ctx, "column store read failed",
				logger.Component("schema"), logger.Table(table), logger.Error(err))
		} else if ok {
			p.local.Put(table, slices.Clone(cols))
			return cols, nil
		}
	}

	cols, err := p.next.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	p.local.Put(table, slices.Clone(cols))
	if p.store != nil {
		if err := p.store.Set(ctx, table, cols, p.ttl); err != nil {
			p.logger.WarnContext(ctx, "column store write failed",
				logger.Component("schema"), logger.Table(table), logger.Error(err))
		}
	}
	return cols, nil
}

// Invalidate drops a table from the in-process cache.
func (p *CachedProvider) Invalidate(table string) {
	p.local.Remove(table)
}
