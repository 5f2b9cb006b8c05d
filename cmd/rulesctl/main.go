// Command rulesctl inspects the storage metadata rules are derived from.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/config"
	"github.com/dmitrymomot/ruleset/pkg/logger"
)

const (
	Version = "0.1.0"
	appName = "rulesctl"
)

// app carries state shared by subcommands once the root command ran.
type app struct {
	log *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		envFiles []string
		logLevel string
		env      string
	)
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Inspect column metadata and the rules derived from it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}
			a.log = logger.New(
				logger.WithEnvironment(env, appName),
				logger.WithLevel(logger.ParseLevel(logLevel, slog.LevelWarn)),
				logger.WithOutput(cmd.ErrOrStderr()),
			).With(logger.Command(cmd.Name()))
			return nil
		},
	}

	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Env files to load before reading configuration")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&env, "env", logger.EnvDevelopment, "Environment name, selects log format")

	cmd.AddCommand(
		columnsCmd(a),
		migrateCmd(a),
		cacheCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}
