package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ruleset/pkg/config"
	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/mongo"
	"github.com/dmitrymomot/ruleset/pkg/pg"
	"github.com/dmitrymomot/ruleset/pkg/redis"
	"github.com/dmitrymomot/ruleset/pkg/schema"
	"github.com/dmitrymomot/ruleset/pkg/validation"
)

var (
	errUnknownSource = errors.New("unknown source, use pg or mongo")
	errUnknownFormat = errors.New("unknown format, use yaml or json")
)

type columnView struct {
	Column schema.Column `json:"column" yaml:"column"`
	GoType string        `json:"go_type,omitempty" yaml:"go_type,omitempty"`
	Rules  []string      `json:"rules" yaml:"rules"`
}

type report struct {
	Source  string       `json:"source" yaml:"source"`
	Table   string       `json:"table" yaml:"table"`
	Columns []columnView `json:"columns" yaml:"columns"`
}

func columnsCmd(a *app) *cobra.Command {
	var (
		table    string
		source   string
		format   string
		useCache bool
	)

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Print the columns of a table and the rules they imply",
		Example: `  rulesctl columns --table users
  rulesctl columns --table billing.invoices --format json
  rulesctl columns --table events --source mongo --cache`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			provider, closeFn, err := openProvider(cmd, source)
			if err != nil {
				return err
			}
			defer closeFn()

			if useCache {
				var rcfg redis.Config
				if err := config.Load(&rcfg); err != nil {
					return err
				}
				client, err := redis.Connect(ctx, rcfg)
				if err != nil {
					return err
				}
				defer client.Close()

				var vcfg validation.Config
				if err := config.Load(&vcfg); err != nil {
					return err
				}
				provider = schema.NewCachedProvider(provider,
					schema.WithStore(redis.NewColumnStoreWithConfig(client, rcfg)),
					schema.WithCacheTTL(vcfg.SchemaCacheTTL),
					schema.WithCacheLogger(a.log),
				)
			}

			cols, err := provider.Columns(ctx, table)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "columns loaded", logger.Table(table), slog.Int("columns", len(cols)))

			return render(cmd.OutOrStdout(), format, buildReport(source, table, cols))
		},
	}

	cmd.Flags().StringVarP(&table, "table", "t", "", "Table or collection name")
	cmd.Flags().StringVarP(&source, "source", "s", "pg", "Metadata source (pg, mongo)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Share lookups through the Redis column store")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

// openProvider connects to the configured source.
func openProvider(cmd *cobra.Command, source string) (schema.Provider, func(), error) {
	ctx := cmd.Context()
	switch source {
	case "pg":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return pg.NewSchemaProvider(pool, cfg.Schema), pool.Close, nil
	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return mongo.NewSchemaProvider(db), func() { _ = db.Client().Disconnect(ctx) }, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", errUnknownSource, source)
}

func buildReport(source, table string, cols []schema.Column) report {
	r := report{Source: source, Table: table, Columns: make([]columnView, 0, len(cols))}
	for _, c := range cols {
		v := columnView{Column: c, Rules: []string{}}
		if t := goTypeFor(c.DataType); t != nil {
			v.GoType = t.String()
			for _, rl := range schema.Derive(c, t) {
				v.Rules = append(v.Rules, rl.String())
			}
		}
		r.Columns = append(r.Columns, v)
	}
	return r
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("%w: %q", errUnknownFormat, format)
}

var (
	typeString = reflect.TypeFor[string]()
	typeTime   = reflect.TypeFor[time.Time]()
)

// goTypeFor returns the Go type a field mapped to dataType usually has.
// Postgres and BSON type names are recognised; unions such as "string|null"
// use their first non-null member.
func goTypeFor(dataType string) reflect.Type {
	parts := slices.DeleteFunc(strings.Split(strings.ToLower(dataType), "|"), func(s string) bool {
		return s == "null" || s == ""
	})
	if len(parts) == 0 {
		return nil
	}
	name := parts[0]

	switch name {
	case "smallint":
		return reflect.TypeFor[int16]()
	case "integer", "int":
		return reflect.TypeFor[int32]()
	case "bigint", "long":
		return reflect.TypeFor[int64]()
	case "real":
		return reflect.TypeFor[float32]()
	case "double precision", "numeric", "decimal", "double":
		return reflect.TypeFor[float64]()
	case "text", "string", "character", "character varying", "varchar", "char":
		return typeString
	case "boolean", "bool":
		return reflect.TypeFor[bool]()
	case "uuid":
		return reflect.TypeFor[uuid.UUID]()
	case "date":
		return typeTime
	}
	if strings.HasPrefix(name, "timestamp") || strings.HasPrefix(name, "time") {
		return typeTime
	}
	return nil
}
