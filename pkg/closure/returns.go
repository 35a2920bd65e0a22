package closure

import (
	"fmt"
	"sort"
	"sync"
)

// ReturnTable holds the return-value destructors of a set of closure
// signatures, keyed by return-type name. Each name has at most one
// destructor. Names without one are treated as plain values needing no
// cleanup.
type ReturnTable struct {
	mu          sync.RWMutex
	destructors map[string]func(any)
}

// NewReturnTable returns an empty table.
func NewReturnTable() *ReturnTable {
	return &ReturnTable{destructors: map[string]func(any){}}
}

// Register installs the destructor for values of the named return type.
func (t *ReturnTable) Register(name string, destroy func(any)) error {
	if destroy == nil {
		return fmt.Errorf("closure: nil destructor for %q", name)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.destructors[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateDestructor, name)
	}
	t.destructors[name] = destroy
	return nil
}

// Unregister drops the destructor for name, if any.
func (t *ReturnTable) Unregister(name string) {
	t.mu.Lock()
	delete(t.destructors, name)
	t.mu.Unlock()
}

// Has reports whether name has a destructor.
func (t *ReturnTable) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.destructors[name]
	return ok
}

// Release destroys v using the destructor registered for name. It returns
// false when name has none and v was left untouched.
func (t *ReturnTable) Release(name string, v any) bool {
	t.mu.RLock()
	destroy, ok := t.destructors[name]
	t.mu.RUnlock()
	if !ok {
		return false
	}
	destroy(v)
	return true
}

// Names lists the registered return-type names in sorted order.
func (t *ReturnTable) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.destructors))
	for name := range t.destructors {
		names = append(names, name)
	}
	t.mu.RUnlock()
	sort.Strings(names)
	return names
}
