package marker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Type identifies a kind of marker.
type Type struct {
	Name       string
	constraint bool
}

// Constraint declares a constraint marker type value.
func Constraint(name string) Type {
	return Type{Name: name, constraint: true}
}

// Plain declares a non-constraint marker type value.
func Plain(name string) Type {
	return Type{Name: name}
}

// IsConstraint reports whether builders may be registered for the type.
func (t Type) IsConstraint() bool { return t.constraint }

func (t Type) String() string { return t.Name }

// Built-in marker types.
var (
	Required = Constraint("required")
	NotBlank = Constraint("notblank")
	Email    = Constraint("email")
	URL      = Constraint("url")
	UUID     = Constraint("uuid")
	MaxLen   = Constraint("maxlen")
	Size     = Constraint("size")
	Digits   = Constraint("digits")
	Min      = Constraint("min")
	Max      = Constraint("max")

	// Inherit redirects rule inheritance of a projection field.
	Inherit = Plain("inherit")
)

var registry = struct {
	sync.RWMutex
	types map[string]Type
}{
	types: map[string]Type{},
}

func init() {
	for _, t := range []Type{Required, NotBlank, Email, URL, UUID, MaxLen, Size, Digits, Min, Max, Inherit} {
		registry.types[t.Name] = t
	}
}

// Declare makes a marker type known to Parse. Redeclaring a name replaces it.
func Declare(t Type) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	registry.Lock()
	registry.types[t.Name] = t
	registry.Unlock()
	return nil
}

// Lookup returns the declared type for a name.
func Lookup(name string) (Type, bool) {
	registry.RLock()
	defer registry.RUnlock()
	t, ok := registry.types[name]
	return t, ok
}

// Marker is a single parsed tag entry.
type Marker struct {
	Type  Type
	Value string
}

func (m Marker) String() string {
	if m.Value == "" {
		return m.Type.Name
	}
	return m.Type.Name + "=" + m.Value
}

// Int parses the value as an integer.
func (m Marker) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(m.Value))
	if err != nil {
		return 0, errors.Join(ErrInvalidValue, fmt.Errorf("%s: %w", m.Type, err))
	}
	return n, nil
}

// Float parses the value as a float.
func (m Marker) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(m.Value), 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidValue, fmt.Errorf("%s: %w", m.Type, err))
	}
	return f, nil
}

// Pair parses an "a:b" value into two integers.
func (m Marker) Pair() (int, int, error) {
	a, b, ok := strings.Cut(m.Value, ":")
	if !ok {
		return 0, 0, errors.Join(ErrInvalidValue, fmt.Errorf("%s: expected a:b, got %q", m.Type, m.Value))
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, errors.Join(ErrInvalidValue, fmt.Errorf("%s: %w", m.Type, err))
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, errors.Join(ErrInvalidValue, fmt.Errorf("%s: %w", m.Type, err))
	}
	return x, y, nil
}

// Parse splits a tag into markers. Empty entries and "-" are skipped.
func Parse(tag string) []Marker {
	if tag == "" || tag == "-" {
		return nil
	}
	parts := strings.Split(tag, ",")
	out := make([]Marker, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		t, ok := Lookup(name)
		if !ok {
			t = Plain(name)
		}
		out = append(out, Marker{Type: t, Value: strings.TrimSpace(value)})
	}
	return out
}
