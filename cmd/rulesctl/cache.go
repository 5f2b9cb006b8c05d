package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/config"
	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/redis"
)

func cacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the shared column cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Drop every cached column list, e.g. after a migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg redis.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			client, err := redis.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := redis.Healthcheck(client)(ctx); err != nil {
				return err
			}

			removed, err := redis.NewColumnStoreWithConfig(client, cfg).Purge(ctx)
			if err != nil {
				a.log.ErrorContext(ctx, "purge failed", logger.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached tables\n", removed)
			return nil
		},
	})
	return cmd
}
