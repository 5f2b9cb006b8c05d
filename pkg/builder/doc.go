// Package builder maps constraint marker types to the plugins that turn them
// into rules.
//
// A Builder declares the marker types it understands, the rule kind a marker
// produces, and two operations: Create makes a new rule from a marker and
// Update applies a marker to a rule of the same kind that already exists.
//
// # Registry priority
//
// Registry keeps one builder per marker type. Builders registered explicitly
// with Register always win: they replace whatever was registered before,
// including earlier explicit registrations. Builders handed to
// RegisterDiscovered only fill gaps and never replace an existing entry. The
// usual startup sequence is
//
//	reg := builder.NewRegistry()
//	reg.MustRegister(myLengthBuilder{})           // explicit, wins
//	reg.MustRegisterDiscovered(builder.Defaults()...) // fills the rest
//
// Only constraint marker types may be registered. Registering a builder for a
// plain type fails with ErrNotConstraintMarker and leaves the registry
// untouched; the Must variants panic, making the misconfiguration fatal at
// startup.
//
// The registry is safe for concurrent use, so late registrations follow the
// same priority rules.
package builder
