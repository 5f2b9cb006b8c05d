package builder

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Mark builds MarkRule values. The marker name is the mark.
type Mark struct{}

func (Mark) MarkerTypes() []marker.Type {
	return []marker.Type{marker.Required, marker.NotBlank, marker.Email, marker.URL, marker.UUID}
}

func (Mark) Kind(m marker.Marker) rule.Kind {
	return rule.MarkKind(rule.Mark(m.Type.Name))
}

func (Mark) Create(m marker.Marker) (rule.Rule, error) {
	return rule.NewMark(rule.Mark(m.Type.Name))
}

// Update is a no-op: marks carry no data.
func (Mark) Update(m marker.Marker, existing rule.Rule) error {
	if _, ok := existing.(*rule.MarkRule); !ok {
		return errors.Join(ErrRuleMismatch, fmt.Errorf("mark builder got %T", existing))
	}
	return nil
}
