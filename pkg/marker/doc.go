// Package marker parses declarative constraint markers from struct tags.
//
// A marker is one comma separated entry of a tag such as
//
//	Name string `validate:"required,maxlen=50"`
//
// Each marker has a Type. Types are either constraint types, which rule
// builders may be registered for, or plain types such as Inherit, which carry
// instructions for the derivation engine itself. Unknown names parse into
// plain types so that tags shared with other libraries never break
// derivation.
//
// Custom constraint types are declared once at startup with Declare and can
// then be used in tags and registered with a builder.
package marker
