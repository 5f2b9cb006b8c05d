package marker

import "strings"

// Redirect overrides where a projection field inherits its rules from.
// Empty fields keep the defaults: the same property name on the projection's
// own entity.
type Redirect struct {
	Property string
	Entity   string
}

// ParseRedirect parses an inherit tag of the form "Property,from=table".
// Both parts are optional.
func ParseRedirect(tag string) (Redirect, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == "-" {
		return Redirect{}, false
	}
	var r Redirect
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if from, ok := strings.CutPrefix(part, "from="); ok {
			r.Entity = strings.TrimSpace(from)
			continue
		}
		if part != "" && r.Property == "" {
			r.Property = part
		}
	}
	return r, true
}

// Marker returns the redirect as an Inherit marker.
func (r Redirect) Marker() Marker {
	v := r.Property
	if r.Entity != "" {
		v += ",from=" + r.Entity
	}
	return Marker{Type: Inherit, Value: v}
}
