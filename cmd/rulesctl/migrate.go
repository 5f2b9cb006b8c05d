package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/config"
	"github.com/dmitrymomot/ruleset/pkg/pg"
)

func migrateCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply goose migrations, usually fixture schemas for local work",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg pg.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if dir != "" {
				cfg.MigrationsPath = dir
			}

			pool, err := pg.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pg.Migrate(ctx, pool, cfg, a.log); err != nil {
				return err
			}
			a.log.InfoContext(ctx, "migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Migrations directory, overrides PG_MIGRATIONS_PATH")
	return cmd
}
