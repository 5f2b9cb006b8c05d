// Package model marks struct types as persistent entities or as projections
// of an entity.
//
// An entity is any struct implementing Entity. A projection is a struct that
// embeds Projection parameterized by the entity it mirrors:
//
//	type User struct {
//	    ID    int64
//	    Email string
//	}
//
//	func (User) TableName() string { return "users" }
//
//	type UserView struct {
//	    model.Projection[User]
//	    Email string
//	}
package model

import "reflect"

// Entity is a persistent model backed by a storage table or collection.
type Entity interface {
	TableName() string
}

// Projection is embedded by view and transport models to name the entity
// they mirror. It has no fields and adds nothing to the layout.
type Projection[E Entity] struct{}

func (Projection[E]) projectedEntity() reflect.Type {
	return reflect.TypeFor[E]()
}

type projection interface {
	projectedEntity() reflect.Type
}

var (
	entityType     = reflect.TypeFor[Entity]()
	projectionType = reflect.TypeFor[projection]()
)

// IsEntity reports whether t (or *t) implements Entity. Interface types are
// never entities: they have no storage of their own.
func IsEntity(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Interface {
		return false
	}
	return t.Implements(entityType) || reflect.PointerTo(t).Implements(entityType)
}

// IsProjection reports whether t embeds a Projection.
func IsProjection(t reflect.Type) bool {
	_, ok := EntityOf(t)
	return ok
}

// EntityOf returns the entity type a projection type mirrors.
func EntityOf(t reflect.Type) (reflect.Type, bool) {
	if t == nil || t.Kind() != reflect.Struct || !t.Implements(projectionType) {
		return nil, false
	}
	p, ok := reflect.Zero(t).Interface().(projection)
	if !ok {
		return nil, false
	}
	return p.projectedEntity(), true
}

// TableOf returns the table name of an entity type. TableName is called on a
// fresh zero value; a method that panics on it reports no table.
func TableOf(t reflect.Type) (string, bool) {
	e, ok := zeroEntity(t)
	if !ok {
		return "", false
	}
	return tableName(e)
}

func zeroEntity(t reflect.Type) (Entity, bool) {
	if !IsEntity(t) {
		return nil, false
	}
	var v reflect.Value
	switch {
	case t.Kind() == reflect.Pointer:
		v = reflect.New(t.Elem())
	case t.Implements(entityType):
		v = reflect.Zero(t)
	default:
		v = reflect.New(t)
	}
	e, ok := v.Interface().(Entity)
	return e, ok
}

func tableName(e Entity) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()
	return e.TableName(), true
}

// IsProjectionField reports whether a struct field is the embedded Projection marker.
func IsProjectionField(f reflect.StructField) bool {
	return f.Anonymous && f.Type.Kind() == reflect.Struct && f.Type.NumField() == 0 &&
		f.Type.Implements(projectionType)
}
