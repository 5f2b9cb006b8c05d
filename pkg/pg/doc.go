// Package pg reads column metadata from PostgreSQL for rule derivation.
//
// SchemaProvider implements schema.Provider on top of
// information_schema.columns: character columns report their maximum length,
// numeric columns their precision and scale, and every column its
// nullability. Binary precisions (integer and floating point types report
// bits) are converted to decimal digits. A NULL scale, as reported for
// floating point columns, becomes -1 so that no decimal rule is derived.
//
// The package also carries the plumbing a service needs around the provider:
// Config populated from environment variables, Connect opening a pgxpool with
// retries, Healthcheck for readiness probes and Migrate running goose
// migrations through the same pool.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	factory := validation.New(
//		validation.WithSchemaProvider(pg.NewSchemaProvider(pool, cfg.Schema)),
//	)
//
// Qualified table names ("billing.invoices") override the configured schema.
//
// # Errors
//
// Query failures are wrapped with ErrColumnQueryFailed.
// IsInsufficientPrivilegeError tells permission problems on the catalog apart
// from connectivity errors.
package pg
