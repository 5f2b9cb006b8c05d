package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/ruleset/pkg/builder"
	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/metadata"
	"github.com/dmitrymomot/ruleset/pkg/model"
	"github.com/dmitrymomot/ruleset/pkg/schema"
)

const defaultWarmConcurrency = 4

// entry is the per-type cache slot. once guards the single build; cfg is
// written inside once.Do and read only after it returns.
type entry struct {
	once sync.Once
	cfg  *Configuration
}

// Factory derives and caches configurations. It is safe for concurrent use.
type Factory struct {
	registry        *builder.Registry
	metadata        metadata.Provider
	schema          schema.Provider
	logger          *slog.Logger
	entities        map[string]reflect.Type
	shadowedTables  []string
	columnName      func(reflect.StructField) string
	metrics         *metrics
	warmConcurrency int

	mu      sync.Mutex
	entries map[reflect.Type]*entry
	builds  atomic.Int64
}

// New returns a Factory with the built-in builders and struct tag metadata.
func New(opts ...Option) *Factory {
	f := &Factory{
		registry:        builder.NewDefaultRegistry(),
		metadata:        metadata.NewStructProvider(),
		logger:          logger.Discard(),
		entities:        make(map[string]reflect.Type),
		columnName:      ColumnName,
		warmConcurrency: defaultWarmConcurrency,
		entries:         make(map[reflect.Type]*entry),
	}
	for _, opt := range opts {
		opt(f)
	}
	for _, table := range f.shadowedTables {
		f.logger.Warn("entity table registered twice, last registration wins",
			logger.Component("validation"), logger.Table(table), logger.Model(f.entities[table]))
	}
	f.shadowedTables = nil
	return f
}

var defaultFactory = sync.OnceValue(func() *Factory { return New() })

// Default returns a process-wide Factory with default settings.
func Default() *Factory { return defaultFactory() }

// Registry returns the builder registry, for startup registration.
func (f *Factory) Registry() *builder.Registry { return f.registry }

// Configuration returns the configuration of t, deriving it on first use.
// Pointer types are dereferenced. The result is never nil.
func (f *Factory) Configuration(t reflect.Type) *Configuration {
	return f.ConfigurationContext(context.Background(), t)
}

// ConfigurationContext is Configuration with a context for storage lookups.
// Cancellation does not affect the cached result: the build runs detached
// from ctx's deadline so that one impatient caller cannot cache a partial
// configuration for everybody.
func (f *Factory) ConfigurationContext(ctx context.Context, t reflect.Type) *Configuration {
	t = metadata.Indirect(t)
	if t == nil {
		return newConfiguration(nil)
	}

	f.mu.Lock()
	e, ok := f.entries[t]
	if !ok {
		e = &entry{}
		f.entries[t] = e
	}
	f.mu.Unlock()

	e.once.Do(func() {
		e.cfg = f.safeBuild(context.WithoutCancel(ctx), t)
	})
	return e.cfg
}

// safeBuild runs build and turns a panic from user code (providers,
// builders, model methods) into an empty configuration, so the cached
// slot is never left nil.
func (f *Factory) safeBuild(ctx context.Context, t reflect.Type) (cfg *Configuration) {
	defer func() {
		if r := recover(); r != nil {
			cfg = newConfiguration(t)
			f.logger.WarnContext(ctx, "configuration derivation panicked, no rules applied",
				logger.Component("validation"),
				logger.Model(t),
				logger.Error(fmt.Errorf("%w: %v", ErrDerivationPanic, r)),
			)
		}
	}()
	return f.build(ctx, t)
}

// For returns the configuration of T.
func For[T any](f *Factory) *Configuration {
	return f.Configuration(reflect.TypeFor[T]())
}

// Builds returns how many configurations have been derived.
func (f *Factory) Builds() int64 { return f.builds.Load() }

// Warm derives the configurations of types concurrently.
func (f *Factory) Warm(ctx context.Context, types ...reflect.Type) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.warmConcurrency)
	for _, t := range types {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f.ConfigurationContext(gctx, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Join(ErrWarmUp, err)
	}
	return nil
}

func (f *Factory) build(ctx context.Context, t reflect.Type) *Configuration {
	start := time.Now()
	ctx = logger.ContextWithModel(ctx, t)
	cfg := newConfiguration(t)
	props := f.metadata.Properties(t)

	kind := "plain"
	switch {
	case model.IsEntity(t):
		kind = "entity"
		f.addColumnRules(ctx, cfg, t, props)
	case model.IsProjection(t):
		kind = "projection"
		f.addInheritedRules(ctx, cfg, t, props)
	}

	for _, p := range props {
		f.addMarkerRules(ctx, cfg, p)
	}

	f.builds.Add(1)
	elapsed := time.Since(start)
	f.metrics.observe(kind, elapsed)
	f.logger.DebugContext(ctx, "configuration derived",
		logger.Component("validation"),
		logger.Model(t),
		slog.String("kind", kind),
		slog.Int("properties", cfg.Len()),
		logger.Duration(elapsed),
	)
	return cfg
}
