package rule

import (
	"errors"
	"fmt"
	"strings"
)

// Mark names a presence or shape constraint that carries no data.
type Mark string

const (
	// MarkRequired means a value must be present. It applies to any type.
	MarkRequired Mark = "required"
	// MarkNotBlank means a string must contain a non-whitespace character.
	MarkNotBlank Mark = "notblank"
	MarkEmail    Mark = "email"
	MarkURL      Mark = "url"
	MarkUUID     Mark = "uuid"
)

var knownMarks = map[Mark]struct{}{
	MarkRequired: {},
	MarkNotBlank: {},
	MarkEmail:    {},
	MarkURL:      {},
	MarkUUID:     {},
}

// MarkKind returns the rule kind a mark rule with the given mark has.
func MarkKind(m Mark) Kind {
	return Kind(markKindPrefix + string(m))
}

// IsMarkKind reports whether k belongs to a mark rule.
func IsMarkKind(k Kind) bool {
	return strings.HasPrefix(string(k), markKindPrefix)
}

// MarkRule is a presence or shape marker.
type MarkRule struct {
	Mark Mark `json:"mark" yaml:"mark"`
}

// NewMark returns a mark rule for one of the known marks.
func NewMark(m Mark) (*MarkRule, error) {
	if _, ok := knownMarks[m]; !ok {
		return nil, errors.Join(ErrUnknownMark, fmt.Errorf("mark %q", m))
	}
	return &MarkRule{Mark: m}, nil
}

// Required is shorthand for a required mark.
func Required() *MarkRule {
	return &MarkRule{Mark: MarkRequired}
}

func (r *MarkRule) Kind() Kind { return MarkKind(r.Mark) }

func (r *MarkRule) Clone() Rule {
	c := *r
	return &c
}

func (r *MarkRule) String() string { return string(r.Mark) }
