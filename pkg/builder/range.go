package builder

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Range builds RangeRule values from min=N and max=N markers.
// Both markers resolve to the same rule, so "min=1,max=9" yields one range.
type Range struct{}

func (Range) MarkerTypes() []marker.Type {
	return []marker.Type{marker.Min, marker.Max}
}

func (Range) Kind(marker.Marker) rule.Kind { return rule.KindRange }

func (b Range) Create(m marker.Marker) (rule.Rule, error) {
	r := &rule.RangeRule{}
	if err := b.apply(m, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (b Range) Update(m marker.Marker, existing rule.Rule) error {
	r, ok := existing.(*rule.RangeRule)
	if !ok {
		return errors.Join(ErrRuleMismatch, fmt.Errorf("range builder got %T", existing))
	}
	next := r.Clone().(*rule.RangeRule)
	if err := b.apply(m, next); err != nil {
		return err
	}
	*r = *next
	return nil
}

func (Range) apply(m marker.Marker, r *rule.RangeRule) error {
	v, err := m.Float()
	if err != nil {
		return err
	}
	switch m.Type {
	case marker.Min:
		r.Min = &v
	case marker.Max:
		r.Max = &v
	}
	return r.Validate()
}
