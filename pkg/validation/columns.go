package validation

import (
	"context"
	"reflect"
	"strings"
	"unicode"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/metadata"
	"github.com/dmitrymomot/ruleset/pkg/model"
	"github.com/dmitrymomot/ruleset/pkg/schema"
)

// addColumnRules adds the rules implied by the entity's storage columns.
func (f *Factory) addColumnRules(ctx context.Context, cfg *Configuration, t reflect.Type, props []metadata.Property) {
	if f.schema == nil {
		return
	}
	table, ok := model.TableOf(t)
	if !ok || table == "" {
		return
	}

	cols, err := f.schema.Columns(ctx, table)
	if err != nil {
		f.logger.WarnContext(ctx, "column lookup failed, skipping storage rules",
			logger.Component("validation"), logger.Model(t), logger.Table(table), logger.Error(err))
		return
	}
	index := schema.Index(cols)

	for _, p := range props {
		name := f.columnName(p.Field)
		if name == "" {
			continue
		}
		col, ok := index[name]
		if !ok {
			continue
		}
		for _, r := range schema.Derive(col, p.Type) {
			cfg.add(p.Name, r)
		}
	}
}

// ColumnName maps a field to its column: the `db` tag name when present,
// otherwise the snake_case field name. A "-" tag leaves the field unmapped.
func ColumnName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("db"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return SnakeCase(f.Name)
}

// SnakeCase converts a Go identifier to snake_case, keeping acronyms together:
// "UserID" becomes "user_id" and "HTTPStatus" becomes "http_status".
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
