// Package validation derives and caches the constraint rules of model types.
//
// A Factory merges three sources into one Configuration per struct type:
//
//  1. storage metadata: for entities (types implementing model.Entity) the
//     columns reported by a schema.Provider are turned into rules by
//     schema.Derive;
//  2. inheritance: for projections (types embedding model.Projection[E]) each
//     simple property copies the rules its counterpart on E already has, or
//     the counterpart named by an `inherit:"Name,from=table"` tag;
//  3. declared markers: every `validate` tag entry, then every accessor
//     marker, is resolved through the builder.Registry. A marker whose rule
//     kind is not yet present creates a rule; otherwise the existing rule is
//     updated in place.
//
// Missing tables, unknown markers, failing builders and unresolvable
// inheritance targets never fail a build: they simply contribute no rule.
//
// # Caching
//
// Each type is derived at most once per Factory. Concurrent requests for the
// same type wait for the single build; requests for different types proceed
// independently. Configurations are immutable once returned and live as long
// as the Factory. Deriving a projection may derive its entity first; entities
// never depend on other configurations, so this nesting is at most one level
// deep and cannot deadlock.
//
// # Usage
//
//	f := validation.New(
//	    validation.WithSchemaProvider(pg.NewSchemaProvider(pool, "public")),
//	    validation.WithEntities(User{}, Account{}),
//	    validation.WithLogger(log),
//	)
//
//	cfg := validation.For[UserView](f)
//	if r, ok := cfg.Rule("Email", rule.KindLength); ok {
//	    fmt.Println(r) // length(max=255)
//	}
//
// Call Warm at startup to derive the configurations of known models
// concurrently before the first request needs them.
package validation
