package schema

import "context"

// Column describes the storage of one persisted property.
type Column struct {
	// Property is the column name the property is mapped to.
	Property string `json:"property" yaml:"property"`
	// DataType is the storage type name, informational only.
	DataType    string `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	Length      int    `json:"length" yaml:"length"`
	Nullable    bool   `json:"nullable" yaml:"nullable"`
	Precision   int    `json:"precision" yaml:"precision"`
	Scale       int    `json:"scale" yaml:"scale"`
	ColumnCount int    `json:"column_count" yaml:"column_count"`
}

// Provider returns the columns of a table or collection.
// A table without columns yields an empty slice and no error.
type Provider interface {
	Columns(ctx context.Context, table string) ([]Column, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, table string) ([]Column, error)

func (f ProviderFunc) Columns(ctx context.Context, table string) ([]Column, error) {
	return f(ctx, table)
}

// Index maps columns by property name.
func Index(cols []Column) map[string]Column {
	out := make(map[string]Column, len(cols))
	for _, c := range cols {
		out[c.Property] = c
	}
	return out
}
