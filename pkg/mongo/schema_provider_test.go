package mongo

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/ruleset/pkg/schema"
)

func mustRaw(t *testing.T, doc bson.D) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestColumnsFromOptions(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, bson.D{{Key: "validator", Value: bson.D{{Key: "$jsonSchema", Value: bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "required", Value: bson.A{"login", "age", "note"}},
		{Key: "properties", Value: bson.D{
			{Key: "login", Value: bson.D{{Key: "bsonType", Value: "string"}, {Key: "maxLength", Value: int32(30)}}},
			{Key: "age", Value: bson.D{{Key: "bsonType", Value: "int"}}},
			{Key: "views", Value: bson.D{{Key: "bsonType", Value: "long"}}},
			{Key: "note", Value: bson.D{{Key: "bsonType", Value: bson.A{"string", "null"}}, {Key: "maxLength", Value: int64(200)}}},
			{Key: "price", Value: bson.D{{Key: "bsonType", Value: "decimal"}}},
		}},
	}}}}})

	cols, err := columnsFromOptions(raw)
	require.NoError(t, err)

	assert.Equal(t, []schema.Column{
		{Property: "age", DataType: "int", Precision: 11, Scale: 0, ColumnCount: 1},
		{Property: "login", DataType: "string", Length: 30, Scale: -1, ColumnCount: 1},
		{Property: "note", DataType: "string|null", Length: 200, Nullable: true, Scale: -1, ColumnCount: 1},
		{Property: "price", DataType: "decimal", Nullable: true, Scale: -1, ColumnCount: 1},
		{Property: "views", DataType: "long", Nullable: true, Precision: 20, Scale: 0, ColumnCount: 1},
	}, cols)
}

func TestColumnsFromOptions_NoValidator(t *testing.T) {
	t.Parallel()

	cols, err := columnsFromOptions(nil)
	require.NoError(t, err)
	assert.Empty(t, cols)

	cols, err = columnsFromOptions(mustRaw(t, bson.D{{Key: "capped", Value: false}}))
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestColumnsFromOptions_Invalid(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, bson.D{{Key: "validator", Value: "not a document"}})
	_, err := columnsFromOptions(raw)
	assert.ErrorIs(t, err, ErrInvalidValidator)
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	type doc struct {
		ID      string `bson:"_id"`
		Name    string
		Skipped string `bson:"-"`
		Opt     string `bson:",omitempty"`
	}
	typ := reflect.TypeFor[doc]()
	name := func(field string) string {
		f, _ := typ.FieldByName(field)
		return FieldName(f)
	}

	assert.Equal(t, "_id", name("ID"))
	assert.Equal(t, "name", name("Name"))
	assert.Empty(t, name("Skipped"))
	assert.Equal(t, "opt", name("Opt"))
}
