// Package redis shares column metadata between processes through Redis.
//
// ColumnStore implements schema.Store: column lists read from the catalog are
// stored as JSON under a key prefix ("ruleset:columns:" by default) with the
// cache TTL, so a fleet of services queries the catalog once per table
// instead of once per process.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	factory := validation.NewFromConfig(vcfg, redis.NewColumnStoreWithConfig(client, cfg),
//		validation.WithSchemaProvider(pg.NewSchemaProvider(pool, pgCfg.Schema)),
//	)
//
// Purge drops every cached table after a migration. Healthcheck returns a
// ping closure for readiness probes.
//
// Errors from the store are wrapped with ErrStoreRead or ErrStoreWrite;
// callers such as schema.CachedProvider log them and fall back to the catalog.
package redis
