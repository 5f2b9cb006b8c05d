package validation

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/ruleset/pkg/builder"
	"github.com/dmitrymomot/ruleset/pkg/metadata"
	"github.com/dmitrymomot/ruleset/pkg/model"
	"github.com/dmitrymomot/ruleset/pkg/schema"
)

// Option configures a Factory.
type Option func(*Factory)

// WithRegistry sets the builder registry. Defaults to builder.NewDefaultRegistry.
func WithRegistry(r *builder.Registry) Option {
	return func(f *Factory) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithMetadataProvider sets the property metadata source.
func WithMetadataProvider(p metadata.Provider) Option {
	return func(f *Factory) {
		if p != nil {
			f.metadata = p
		}
	}
}

// WithSchemaProvider sets the storage metadata source used for entities.
// Without one, entities only get rules from their markers.
func WithSchemaProvider(p schema.Provider) Option {
	return func(f *Factory) { f.schema = p }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithEntities makes entities addressable by table name from inherit tags.
// When two distinct types share a table name the last one wins and New logs
// a warning.
func WithEntities(entities ...model.Entity) Option {
	return func(f *Factory) {
		for _, e := range entities {
			if e == nil {
				continue
			}
			table, t := e.TableName(), metadata.Indirect(reflect.TypeOf(e))
			if prev, ok := f.entities[table]; ok && prev != t && !slices.Contains(f.shadowedTables, table) {
				f.shadowedTables = append(f.shadowedTables, table)
			}
			f.entities[table] = t
		}
	}
}

// WithColumnNamer overrides how struct fields map to column names.
// Returning an empty name leaves the field unmapped.
func WithColumnNamer(fn func(reflect.StructField) string) Option {
	return func(f *Factory) {
		if fn != nil {
			f.columnName = fn
		}
	}
}

// WithMetrics registers build metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(f *Factory) {
		if reg != nil {
			f.metrics = newMetrics(reg)
		}
	}
}
