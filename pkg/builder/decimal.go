package builder

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Decimal builds DecimalRule values from digits=PRECISION:SCALE markers.
type Decimal struct{}

func (Decimal) MarkerTypes() []marker.Type {
	return []marker.Type{marker.Digits}
}

func (Decimal) Kind(marker.Marker) rule.Kind { return rule.KindDecimal }

func (Decimal) Create(m marker.Marker) (rule.Rule, error) {
	p, s, err := m.Pair()
	if err != nil {
		return nil, err
	}
	return rule.NewDecimal(p, s)
}

func (Decimal) Update(m marker.Marker, existing rule.Rule) error {
	r, ok := existing.(*rule.DecimalRule)
	if !ok {
		return errors.Join(ErrRuleMismatch, fmt.Errorf("decimal builder got %T", existing))
	}
	p, s, err := m.Pair()
	if err != nil {
		return err
	}
	next := rule.DecimalRule{Precision: p, Scale: s}
	if err := next.Validate(); err != nil {
		return err
	}
	*r = next
	return nil
}
