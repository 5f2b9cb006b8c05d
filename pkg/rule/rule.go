package rule

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the variant of a rule for lookup and update purposes.
type Kind string

const (
	KindLength  Kind = "length"
	KindDecimal Kind = "decimal"
	KindRange   Kind = "range"
)

// markKindPrefix prefixes mark kinds so they never collide with other kinds.
const markKindPrefix = "mark:"

// Rule is a single derived constraint.
type Rule interface {
	Kind() Kind
	Clone() Rule
	String() string
}

// LengthRule limits the length of string-like values.
type LengthRule struct {
	Min int `json:"min,omitempty" yaml:"min,omitempty"`
	Max int `json:"max" yaml:"max"`
}

// NewLength returns a length rule capped at max characters.
func NewLength(max int) (*LengthRule, error) {
	r := &LengthRule{Max: max}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LengthRule) Kind() Kind { return KindLength }

func (r *LengthRule) Clone() Rule {
	c := *r
	return &c
}

// Validate checks 0 <= Min <= Max and Max > 0.
func (r *LengthRule) Validate() error {
	if r.Max <= 0 {
		return errors.Join(ErrInvalidRule, fmt.Errorf("length max must be positive, got %d", r.Max))
	}
	if r.Min < 0 || r.Min > r.Max {
		return errors.Join(ErrInvalidRule, fmt.Errorf("length min %d out of [0, %d]", r.Min, r.Max))
	}
	return nil
}

func (r *LengthRule) String() string {
	if r.Min > 0 {
		return fmt.Sprintf("length(%d..%d)", r.Min, r.Max)
	}
	return "length(max=" + strconv.Itoa(r.Max) + ")"
}

// DecimalRule limits the total digits and fractional digits of numeric values.
type DecimalRule struct {
	Precision int `json:"precision" yaml:"precision"`
	Scale     int `json:"scale" yaml:"scale"`
}

// NewDecimal returns a decimal rule, enforcing precision > scale >= 0.
func NewDecimal(precision, scale int) (*DecimalRule, error) {
	r := &DecimalRule{Precision: precision, Scale: scale}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DecimalRule) Kind() Kind { return KindDecimal }

func (r *DecimalRule) Clone() Rule {
	c := *r
	return &c
}

// Validate checks precision > scale >= 0.
func (r *DecimalRule) Validate() error {
	if r.Scale < 0 || r.Precision <= r.Scale {
		return errors.Join(ErrInvalidRule,
			fmt.Errorf("decimal precision %d must exceed scale %d >= 0", r.Precision, r.Scale))
	}
	return nil
}

func (r *DecimalRule) String() string {
	return fmt.Sprintf("decimal(%d,%d)", r.Precision, r.Scale)
}

// RangeRule bounds numeric values. A nil bound is open.
type RangeRule struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func (r *RangeRule) Kind() Kind { return KindRange }

func (r *RangeRule) Clone() Rule {
	c := RangeRule{}
	if r.Min != nil {
		v := *r.Min
		c.Min = &v
	}
	if r.Max != nil {
		v := *r.Max
		c.Max = &v
	}
	return &c
}

// Validate checks that both bounds, when set, are ordered.
func (r *RangeRule) Validate() error {
	if r.Min == nil && r.Max == nil {
		return errors.Join(ErrInvalidRule, errors.New("range needs at least one bound"))
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return errors.Join(ErrInvalidRule, fmt.Errorf("range min %g exceeds max %g", *r.Min, *r.Max))
	}
	return nil
}

func (r *RangeRule) String() string {
	bound := func(v *float64) string {
		if v == nil {
			return "*"
		}
		return strconv.FormatFloat(*v, 'g', -1, 64)
	}
	return "range(" + bound(r.Min) + ".." + bound(r.Max) + ")"
}
