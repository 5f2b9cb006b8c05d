// Package metadata lists the simple properties of model structs together with
// the constraint markers declared on them.
//
// The derivation engine never walks struct types itself. It asks a Provider
// for a flat list of properties: embedded structs are already flattened,
// unexported fields are dropped and every property carries the markers of its
// field tag and of its accessor method.
//
// # Accessor markers
//
// Go methods cannot carry tags, so a model declares accessor markers through
// an optional method:
//
//	func (u User) GetName() string { return u.Name }
//
//	func (User) AccessorConstraints() map[string]string {
//	    return map[string]string{"GetName": "required,maxlen=30"}
//	}
//
// Keys are accessor method names; a leading "Get" is stripped to find the
// property. Entries whose method does not exist are ignored. Accessor markers
// are applied after field markers.
package metadata
