// Package rule defines the constraint rule values derived for model properties.
//
// A rule describes one constraint kind (maximum length, decimal precision, a
// presence or shape mark, numeric bounds). Rules do not validate anything by
// themselves; they are data consumed by validators, form renderers and API
// schema generators.
//
// # Kinds
//
// Every rule reports a Kind. A property's Set holds at most one rule per
// kind, so adding a second LengthRule to a set that already has one is a
// no-op. Mark rules are keyed by their mark, which lets a property carry both
// a "required" and an "email" mark while never carrying two "required" marks.
//
// # Usage
//
//	set := rule.NewSet()
//	set.Add(&rule.LengthRule{Max: 50})
//	set.Add(rule.Required())
//
//	if r, ok := set.Get(rule.KindLength); ok {
//	    fmt.Println(r.(*rule.LengthRule).Max) // 50
//	}
//
// Rules are stored by pointer inside a Set so builders can update them in
// place while a configuration is being derived. Use Clone to hand out copies.
package rule
