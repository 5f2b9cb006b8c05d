package builder

import (
	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Builder creates or updates rules from constraint markers.
type Builder interface {
	// MarkerTypes lists the constraint marker types the builder handles.
	MarkerTypes() []marker.Type

	// Kind returns the kind of rule the marker produces.
	Kind(m marker.Marker) rule.Kind

	// Create builds a new rule from the marker.
	Create(m marker.Marker) (rule.Rule, error)

	// Update applies the marker to an existing rule of the same kind, in place.
	Update(m marker.Marker, existing rule.Rule) error
}

// Defaults returns the built-in builders.
func Defaults() []Builder {
	return []Builder{
		Length{},
		Decimal{},
		Mark{},
		Range{},
	}
}
