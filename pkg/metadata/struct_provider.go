package metadata

import (
	"reflect"
	"strings"
	"sync"

	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/model"
)

const (
	DefaultTagName        = "validate"
	DefaultInheritTagName = "inherit"
)

// Option configures a StructProvider.
type Option func(*StructProvider)

// WithTagName sets the struct tag holding constraint markers.
func WithTagName(name string) Option {
	return func(p *StructProvider) {
		if name != "" {
			p.tagName = name
		}
	}
}

// WithInheritTagName sets the struct tag holding redirection markers.
func WithInheritTagName(name string) Option {
	return func(p *StructProvider) {
		if name != "" {
			p.inheritTagName = name
		}
	}
}

// StructProvider reads properties from struct fields and tags via reflection.
// Results are cached per type.
type StructProvider struct {
	tagName        string
	inheritTagName string
	cache          sync.Map // reflect.Type -> []Property
}

// NewStructProvider returns a reflection based provider.
func NewStructProvider(opts ...Option) *StructProvider {
	p := &StructProvider{
		tagName:        DefaultTagName,
		inheritTagName: DefaultInheritTagName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Properties returns the simple properties of t. Non-struct types yield nil.
func (p *StructProvider) Properties(t reflect.Type) []Property {
	t = Indirect(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := p.cache.Load(t); ok {
		return cached.([]Property)
	}

	accessors := accessorTags(t)
	seen := make(map[string]struct{})
	var props []Property
	p.collect(t, nil, accessors, seen, map[reflect.Type]bool{}, &props)

	actual, _ := p.cache.LoadOrStore(t, props)
	return actual.([]Property)
}

// collect walks fields breadth first per level so outer declarations shadow
// embedded ones, mirroring Go's field promotion. A type already on the walk
// path is not entered again, which stops self-embedding cycles.
func (p *StructProvider) collect(t reflect.Type, index []int, accessors map[string][]marker.Marker, seen map[string]struct{}, path map[reflect.Type]bool, out *[]Property) {
	path[t] = true
	defer delete(path, t)

	var embedded []reflect.StructField

	for i := range t.NumField() {
		f := t.Field(i)
		f.Index = append(append([]int(nil), index...), i)

		if model.IsProjectionField(f) {
			continue
		}
		if f.Anonymous {
			if ft := Indirect(f.Type); ft.Kind() == reflect.Struct && !IsSimple(ft) {
				embedded = append(embedded, f)
				continue
			}
		}
		if !f.IsExported() || !IsSimple(f.Type) {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}

		prop := Property{
			Name:            f.Name,
			Type:            f.Type,
			Field:           f,
			FieldMarkers:    marker.Parse(f.Tag.Get(p.tagName)),
			AccessorMarkers: accessors[f.Name],
		}
		if tag, ok := f.Tag.Lookup(p.inheritTagName); ok {
			if r, ok := marker.ParseRedirect(tag); ok {
				prop.Redirect = &r
			}
		}
		*out = append(*out, prop)
	}

	for _, f := range embedded {
		if ft := Indirect(f.Type); !path[ft] {
			p.collect(ft, f.Index, accessors, seen, path, out)
		}
	}
}

// accessorTags resolves AccessorConstraints entries to property names,
// keeping only entries whose accessor method exists.
func accessorTags(t reflect.Type) map[string][]marker.Marker {
	pt := reflect.PointerTo(t)
	c, ok := reflect.New(t).Interface().(AccessorConstrainer)
	if !ok {
		return nil
	}
	out := make(map[string][]marker.Marker)
	for method, tag := range c.AccessorConstraints() {
		if _, exists := pt.MethodByName(method); !exists {
			continue
		}
		name := method
		if trimmed, ok := strings.CutPrefix(method, "Get"); ok && trimmed != "" {
			if _, isField := t.FieldByName(method); !isField {
				name = trimmed
			}
		}
		out[name] = append(out[name], marker.Parse(tag)...)
	}
	return out
}
