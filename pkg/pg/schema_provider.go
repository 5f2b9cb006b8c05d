package pg

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/ruleset/pkg/schema"
)

// Querier is the subset of *pgxpool.Pool used to read the catalog.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// information_schema columns use domain types pgx does not know, hence the casts.
const columnsQuery = `
SELECT column_name::text,
       data_type::text,
       character_maximum_length::int,
       is_nullable::text,
       numeric_precision::int,
       numeric_precision_radix::int,
       numeric_scale::int
FROM information_schema.columns
WHERE table_schema = $1 AND table_name = $2
ORDER BY ordinal_position`

// SchemaProvider reads column metadata from information_schema.
// Tables may be schema qualified ("billing.invoices"); unqualified names use
// the configured schema.
type SchemaProvider struct {
	db     Querier
	schema string
}

// NewSchemaProvider returns a provider for tables in schemaName.
// An empty schemaName means "public".
func NewSchemaProvider(db Querier, schemaName string) *SchemaProvider {
	if schemaName == "" {
		schemaName = DefaultSchema
	}
	return &SchemaProvider{db: db, schema: schemaName}
}

// Columns returns one column per table column, in ordinal order.
// A missing table yields an empty list.
func (p *SchemaProvider) Columns(ctx context.Context, table string) ([]schema.Column, error) {
	if table == "" {
		return nil, schema.ErrEmptyTable
	}
	schemaName, name := p.schema, table
	if s, t, ok := strings.Cut(table, "."); ok {
		schemaName, name = s, t
	}

	rows, err := p.db.Query(ctx, columnsQuery, schemaName, name)
	if err != nil {
		return nil, errors.Join(ErrColumnQueryFailed, err)
	}
	infos, err := pgx.CollectRows(rows, pgx.RowToStructByPos[columnInfo])
	if err != nil {
		return nil, errors.Join(ErrColumnQueryFailed, err)
	}

	cols := make([]schema.Column, 0, len(infos))
	for _, info := range infos {
		cols = append(cols, info.column())
	}
	return cols, nil
}

type columnInfo struct {
	Name       string
	DataType   string
	MaxLength  *int32
	IsNullable string
	Precision  *int32
	Radix      *int32
	Scale      *int32
}

func (c columnInfo) column() schema.Column {
	col := schema.Column{
		Property:    c.Name,
		DataType:    c.DataType,
		Nullable:    c.IsNullable == "YES",
		Scale:       -1,
		ColumnCount: 1,
	}
	if c.MaxLength != nil {
		col.Length = int(*c.MaxLength)
	}
	if c.Scale != nil {
		col.Scale = int(*c.Scale)
	}
	if c.Precision != nil {
		col.Precision = int(*c.Precision)
		if c.Radix != nil && *c.Radix == 2 {
			col.Precision = decimalDigits(col.Precision)
		}
	}
	return col
}

// decimalDigits converts a binary precision to the decimal digits it spans.
func decimalDigits(bits int) int {
	return int(math.Ceil(float64(bits) * math.Log10(2)))
}
