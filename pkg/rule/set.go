package rule

import (
	"maps"
	"slices"
)

// Set holds at most one rule per kind.
// It is not safe for concurrent mutation.
type Set map[Kind]Rule

// NewSet creates a set pre-populated with rules. Later duplicates of a kind are dropped.
func NewSet(rules ...Rule) Set {
	s := make(Set, len(rules))
	for _, r := range rules {
		s.Add(r)
	}
	return s
}

// Add stores r unless a rule of the same kind is already present.
// It reports whether r was stored.
func (s Set) Add(r Rule) bool {
	if r == nil {
		return false
	}
	if _, ok := s[r.Kind()]; ok {
		return false
	}
	s[r.Kind()] = r
	return true
}

// Get returns the rule of the given kind.
func (s Set) Get(kind Kind) (Rule, bool) {
	r, ok := s[kind]
	return r, ok
}

// Has reports whether a rule of the given kind is present.
func (s Set) Has(kind Kind) bool {
	_, ok := s[kind]
	return ok
}

func (s Set) Len() int { return len(s) }

// Kinds returns the kinds present in the set, sorted.
func (s Set) Kinds() []Kind {
	return slices.Sorted(maps.Keys(s))
}

// Rules returns the rules sorted by kind.
func (s Set) Rules() []Rule {
	kinds := s.Kinds()
	out := make([]Rule, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, s[k])
	}
	return out
}

// Clone returns a deep copy so that changes to either set do not leak.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	c := make(Set, len(s))
	for k, r := range s {
		c[k] = r.Clone()
	}
	return c
}

// Equal reports whether both sets hold equivalent rules.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k, r := range s {
		o, ok := other[k]
		if !ok || r.String() != o.String() {
			return false
		}
	}
	return true
}
