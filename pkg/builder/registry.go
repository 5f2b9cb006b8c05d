package builder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrymomot/ruleset/pkg/marker"
)

type entry struct {
	builder  Builder
	explicit bool
}

// Registry resolves marker types to builders.
type Registry struct {
	mu      sync.RWMutex
	entries map[marker.Type]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[marker.Type]entry)}
}

// NewDefaultRegistry returns a registry with the built-in builders discovered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegisterDiscovered(Defaults()...)
	return r
}

// Register associates every marker type declared by b with b, replacing any
// previous association.
func (r *Registry) Register(b Builder) error {
	if err := checkBuilder(b); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range b.MarkerTypes() {
		r.entries[t] = entry{builder: b, explicit: true}
	}
	return nil
}

// RegisterDiscovered associates marker types with builders only where no
// registration exists yet. All builders are checked before any is stored.
func (r *Registry) RegisterDiscovered(builders ...Builder) error {
	for _, b := range builders {
		if err := checkBuilder(b); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range builders {
		for _, t := range b.MarkerTypes() {
			if _, ok := r.entries[t]; ok {
				continue
			}
			r.entries[t] = entry{builder: b}
		}
	}
	return nil
}

// MustRegister is like Register but panics on failure.
func (r *Registry) MustRegister(b Builder) {
	if err := r.Register(b); err != nil {
		panic(fmt.Sprintf("builder: register: %v", err))
	}
}

// MustRegisterDiscovered is like RegisterDiscovered but panics on failure.
func (r *Registry) MustRegisterDiscovered(builders ...Builder) {
	if err := r.RegisterDiscovered(builders...); err != nil {
		panic(fmt.Sprintf("builder: register discovered: %v", err))
	}
}

// Resolve returns the builder registered for the marker type.
func (r *Registry) Resolve(t marker.Type) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[t]
	return e.builder, ok
}

// IsExplicit reports whether the builder for t was registered explicitly.
func (r *Registry) IsExplicit(t marker.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[t].explicit
}

// Len returns the number of registered marker types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func checkBuilder(b Builder) error {
	if b == nil {
		return ErrNilBuilder
	}
	for _, t := range b.MarkerTypes() {
		if !t.IsConstraint() {
			return errors.Join(ErrNotConstraintMarker, fmt.Errorf("%T declares %q", b, t.Name))
		}
	}
	return nil
}
