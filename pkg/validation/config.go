package validation

import (
	"time"

	"github.com/dmitrymomot/ruleset/pkg/metadata"
	"github.com/dmitrymomot/ruleset/pkg/schema"
)

// Config holds environment driven factory settings.
type Config struct {
	TagName         string        `env:"VALIDATION_TAG" envDefault:"validate"`          // TagName is the struct tag holding constraint markers.
	InheritTagName  string        `env:"VALIDATION_INHERIT_TAG" envDefault:"inherit"`   // InheritTagName is the struct tag holding redirection markers.
	SchemaCacheSize int           `env:"VALIDATION_SCHEMA_CACHE_SIZE" envDefault:"256"` // SchemaCacheSize is the number of tables kept in memory; 0 disables caching.
	SchemaCacheTTL  time.Duration `env:"VALIDATION_SCHEMA_CACHE_TTL" envDefault:"10m"`  // SchemaCacheTTL is how long column lists stay cached.
	WarmConcurrency int           `env:"VALIDATION_WARM_CONCURRENCY" envDefault:"4"`    // WarmConcurrency bounds parallel builds in Warm.
}

// NewFromConfig builds a Factory from cfg. Options are applied first; the
// schema provider they set is then wrapped with a cache when enabled.
// A store, if given, backs the cache as a shared second level.
func NewFromConfig(cfg Config, store schema.Store, opts ...Option) *Factory {
	opts = append([]Option{
		WithMetadataProvider(metadata.NewStructProvider(
			metadata.WithTagName(cfg.TagName),
			metadata.WithInheritTagName(cfg.InheritTagName),
		)),
	}, opts...)

	f := New(opts...)
	if cfg.WarmConcurrency > 0 {
		f.warmConcurrency = cfg.WarmConcurrency
	}
	if f.schema != nil && cfg.SchemaCacheSize > 0 {
		cacheOpts := []schema.CacheOption{
			schema.WithCacheSize(cfg.SchemaCacheSize),
			schema.WithCacheTTL(cfg.SchemaCacheTTL),
			schema.WithCacheLogger(f.logger),
		}
		if store != nil {
			cacheOpts = append(cacheOpts, schema.WithStore(store))
		}
		f.schema = schema.NewCachedProvider(f.schema, cacheOpts...)
	}
	return f
}
