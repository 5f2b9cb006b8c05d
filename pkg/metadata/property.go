package metadata

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/ruleset/pkg/marker"
)

// Property is one simple property of a model.
type Property struct {
	// Name is the Go field name.
	Name string
	// Type is the declared field type, pointers included.
	Type reflect.Type
	// Field is the underlying struct field, index relative to the model type.
	Field reflect.StructField
	// FieldMarkers come from the field's struct tag.
	FieldMarkers []marker.Marker
	// AccessorMarkers come from the accessor method declaration.
	AccessorMarkers []marker.Marker
	// Redirect overrides rule inheritance for projection properties.
	Redirect *marker.Redirect
}

// Provider lists the simple properties of a struct type.
type Provider interface {
	Properties(t reflect.Type) []Property
}

// AccessorConstrainer is implemented by models declaring accessor markers.
type AccessorConstrainer interface {
	AccessorConstraints() map[string]string
}

var (
	timeType = reflect.TypeFor[time.Time]()
	uuidType = reflect.TypeFor[uuid.UUID]()
)

// Indirect strips pointer levels from t.
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsTime reports whether t is time.Time or a type convertible to it.
func IsTime(t reflect.Type) bool {
	t = Indirect(t)
	return t == timeType || (t != nil && t.Kind() == reflect.Struct && t.ConvertibleTo(timeType))
}

// IsSimple reports whether t is a flat value type: bool, string, numbers,
// time.Time, uuid.UUID or a pointer to one of those.
func IsSimple(t reflect.Type) bool {
	t = Indirect(t)
	if t == nil {
		return false
	}
	if t == uuidType || IsTime(t) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
