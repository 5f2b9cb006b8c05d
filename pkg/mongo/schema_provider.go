package mongo

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/ruleset/pkg/schema"
)

// Decimal digits of the BSON integer types, sign included.
const (
	intPrecision  = 11
	longPrecision = 20
)

// SchemaProvider derives columns from the $jsonSchema validator of a
// collection. Collections without a validator yield no columns.
type SchemaProvider struct {
	db *mongo.Database
}

// NewSchemaProvider returns a provider reading collections of db.
func NewSchemaProvider(db *mongo.Database) *SchemaProvider {
	return &SchemaProvider{db: db}
}

// Columns returns one column per top-level property of the validator schema,
// sorted by name.
func (p *SchemaProvider) Columns(ctx context.Context, collection string) ([]schema.Column, error) {
	if collection == "" {
		return nil, schema.ErrEmptyTable
	}
	specs, err := p.db.ListCollectionSpecifications(ctx, bson.D{{Key: "name", Value: collection}})
	if err != nil {
		return nil, errors.Join(ErrListCollectionsFailed, err)
	}
	if len(specs) == 0 {
		return nil, nil
	}
	return columnsFromOptions(specs[0].Options)
}

type jsonSchema struct {
	BSONType   any                   `bson:"bsonType"`
	Required   []string              `bson:"required"`
	Properties map[string]jsonSchema `bson:"properties"`
	MaxLength  *int64                `bson:"maxLength"`
}

type collectionOptions struct {
	Validator struct {
		JSONSchema *jsonSchema `bson:"$jsonSchema"`
	} `bson:"validator"`
}

func columnsFromOptions(raw bson.Raw) ([]schema.Column, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var opts collectionOptions
	if err := bson.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Join(ErrInvalidValidator, err)
	}
	root := opts.Validator.JSONSchema
	if root == nil {
		return nil, nil
	}

	cols := make([]schema.Column, 0, len(root.Properties))
	for name, prop := range root.Properties {
		types := bsonTypes(prop.BSONType)
		col := schema.Column{
			Property:    name,
			DataType:    strings.Join(types, "|"),
			Nullable:    !slices.Contains(root.Required, name) || slices.Contains(types, "null"),
			Scale:       -1,
			ColumnCount: 1,
		}
		if prop.MaxLength != nil {
			col.Length = int(*prop.MaxLength)
		}
		switch {
		case slices.Contains(types, "long"):
			col.Precision, col.Scale = longPrecision, 0
		case slices.Contains(types, "int"):
			col.Precision, col.Scale = intPrecision, 0
		}
		cols = append(cols, col)
	}
	slices.SortFunc(cols, func(a, b schema.Column) int { return strings.Compare(a.Property, b.Property) })
	return cols, nil
}

// bsonTypes normalizes the string or array form of bsonType.
func bsonTypes(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case bson.A:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// FieldName maps a struct field to its document key: the `bson` tag name
// when present, otherwise the lower-cased field name, as the driver does.
// Use it with validation.WithColumnNamer for document entities.
func FieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("bson"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}
