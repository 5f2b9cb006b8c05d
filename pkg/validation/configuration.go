package validation

import (
	"maps"
	"reflect"
	"slices"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Configuration holds the derived rules of one model type.
// It is read-only once returned by a Factory.
type Configuration struct {
	model reflect.Type
	rules map[string]rule.Set
}

func newConfiguration(t reflect.Type) *Configuration {
	return &Configuration{model: t, rules: make(map[string]rule.Set)}
}

// Model returns the type the configuration was derived for.
func (c *Configuration) Model() reflect.Type { return c.model }

// Rules returns a copy of the rules of a property, nil if it has none.
func (c *Configuration) Rules(property string) rule.Set {
	return c.rules[property].Clone()
}

// Rule returns a copy of the property's rule of the given kind.
func (c *Configuration) Rule(property string, kind rule.Kind) (rule.Rule, bool) {
	r, ok := c.rules[property].Get(kind)
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// Properties returns the names of properties with at least one rule, sorted.
func (c *Configuration) Properties() []string {
	return slices.Sorted(maps.Keys(c.rules))
}

// Len returns the number of properties with rules.
func (c *Configuration) Len() int { return len(c.rules) }

// IsEmpty reports whether no rule was derived.
func (c *Configuration) IsEmpty() bool { return len(c.rules) == 0 }

// Describe renders every property's rules as strings, for logs and tooling.
func (c *Configuration) Describe() map[string][]string {
	out := make(map[string][]string, len(c.rules))
	for name, set := range c.rules {
		rules := set.Rules()
		strs := make([]string, 0, len(rules))
		for _, r := range rules {
			strs = append(strs, r.String())
		}
		out[name] = strs
	}
	return out
}

func (c *Configuration) get(property string, kind rule.Kind) (rule.Rule, bool) {
	return c.rules[property].Get(kind)
}

func (c *Configuration) add(property string, r rule.Rule) bool {
	set, ok := c.rules[property]
	if !ok {
		set = rule.NewSet()
	}
	if !set.Add(r) {
		return false
	}
	c.rules[property] = set
	return true
}

// inherit copies rules into property, keeping rules already present.
func (c *Configuration) inherit(property string, rules rule.Set) {
	for _, r := range rules.Clone() {
		c.add(property, r)
	}
}

type ruleView struct {
	Kind rule.Kind `json:"kind" yaml:"kind"`
	Rule rule.Rule `json:"rule" yaml:"rule"`
}

type configurationView struct {
	Model      string                `json:"model" yaml:"model"`
	Properties map[string][]ruleView `json:"properties" yaml:"properties"`
}

func (c *Configuration) view() configurationView {
	v := configurationView{Properties: make(map[string][]ruleView, len(c.rules))}
	if c.model != nil {
		v.Model = c.model.String()
	}
	for name, set := range c.rules {
		for _, r := range set.Rules() {
			v.Properties[name] = append(v.Properties[name], ruleView{Kind: r.Kind(), Rule: r})
		}
	}
	return v
}

// MarshalJSON encodes the model name and its rules keyed by property.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (c *Configuration) MarshalYAML() (any, error) {
	return c.view(), nil
}
