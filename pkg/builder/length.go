package builder

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Length builds LengthRule values from maxlen=N and size=MIN:MAX markers.
type Length struct{}

func (Length) MarkerTypes() []marker.Type {
	return []marker.Type{marker.MaxLen, marker.Size}
}

func (Length) Kind(marker.Marker) rule.Kind { return rule.KindLength }

func (b Length) Create(m marker.Marker) (rule.Rule, error) {
	r := &rule.LengthRule{}
	if err := b.apply(m, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (b Length) Update(m marker.Marker, existing rule.Rule) error {
	r, ok := existing.(*rule.LengthRule)
	if !ok {
		return errors.Join(ErrRuleMismatch, fmt.Errorf("length builder got %T", existing))
	}
	next := *r
	if err := b.apply(m, &next); err != nil {
		return err
	}
	*r = next
	return nil
}

func (Length) apply(m marker.Marker, r *rule.LengthRule) error {
	switch m.Type {
	case marker.MaxLen:
		n, err := m.Int()
		if err != nil {
			return err
		}
		r.Max = n
	case marker.Size:
		lo, hi, err := m.Pair()
		if err != nil {
			return err
		}
		r.Min, r.Max = lo, hi
	}
	return r.Validate()
}
