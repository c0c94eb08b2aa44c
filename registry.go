package pixedit

import (
	"fmt"
	"iter"
)

// Transform is a pure image transform. Implementations must not mutate
// the input buffer and must return a fresh buffer that shares no storage
// with it. The same input always yields an identical output.
type Transform func(*Buffer) *Buffer

// FilterRegistry maps filter names to transforms and remembers the order
// in which names were first registered, so menus can list filters the
// way they were installed. The zero value is not usable; call
// NewRegistry or DefaultRegistry.
type FilterRegistry struct {
	transforms map[string]Transform
	order      []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *FilterRegistry {
	return &FilterRegistry{transforms: make(map[string]Transform)}
}

// Register stores the transform under name. Registering an existing name
// replaces its transform but keeps its original listing position.
// An empty name fails with ErrInvalidName.
func (r *FilterRegistry) Register(name string, t Transform) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if _, ok := r.transforms[name]; !ok {
		r.order = append(r.order, name)
	}
	r.transforms[name] = t
	return nil
}

// Lookup returns the transform registered under name, or ErrUnknownFilter
// if no such registration exists.
func (r *FilterRegistry) Lookup(name string) (Transform, error) {
	t, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return t, nil
}

// Names yields the registered names in first-registration order.
// The sequence is lazy and can be ranged over any number of times.
func (r *FilterRegistry) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Len returns the number of registered filters.
func (r *FilterRegistry) Len() int {
	return len(r.order)
}
